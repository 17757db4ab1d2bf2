// Package messaging keeps one in-memory conversation per patient. There is
// no real transport: a delayed task flips each sent message to read,
// simulating the other side. Tasks are cancellable so closing a
// conversation view (or shutting the service down) never leaves timers
// firing into dead state.
package messaging

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mairapenna/nutriplan_backend/internal/domain"
	"github.com/mairapenna/nutriplan_backend/internal/store"
)

// SenderNutri marks messages written from the dashboard side.
const SenderNutri = "nutri"

type Service interface {
	List(ctx context.Context, patientID string) ([]domain.Message, error)
	Send(ctx context.Context, patientID, senderID, text string) (domain.Message, error)
	CloseConversation(patientID string)
	Shutdown()
}

type messagingService struct {
	store *store.Store

	mu            sync.Mutex
	conversations map[string][]domain.Message
	// timers holds the pending read-receipt per message, keyed by
	// patient id then message id.
	timers map[string]map[string]*time.Timer

	delay time.Duration
	now   func() time.Time
}

func New(st *store.Store, readReceiptDelay time.Duration) Service {
	if readReceiptDelay <= 0 {
		readReceiptDelay = time.Second
	}
	s := &messagingService{
		store:         st,
		conversations: map[string][]domain.Message{},
		timers:        map[string]map[string]*time.Timer{},
		delay:         readReceiptDelay,
		now:           time.Now,
	}
	s.seed()
	return s
}

func (s *messagingService) seed() {
	s.conversations["1"] = []domain.Message{
		{ID: "m1", SenderID: "1", Text: "Olá Dra. Maíra! As dores diminuíram bastante essa semana.", Timestamp: "09:30", Status: domain.MessageStatusRead},
		{ID: "m2", SenderID: SenderNutri, Text: "Que ótima notícia, Ana! Continue com o protocolo e me conte como foi o sono.", Timestamp: "09:45", Status: domain.MessageStatusRead},
		{ID: "m3", SenderID: "1", Text: "Pode deixar! Posso substituir o chá de gengibre?", Timestamp: "10:02", Status: domain.MessageStatusRead},
	}
	s.conversations["2"] = []domain.Message{
		{ID: "m4", SenderID: "2", Text: "Bom dia! Consegui reduzir o café para uma xícara por dia.", Timestamp: "08:15", Status: domain.MessageStatusRead},
	}
}

func (s *messagingService) List(_ context.Context, patientID string) ([]domain.Message, error) {
	if _, ok := s.store.Patient(patientID); !ok {
		return nil, ErrPatientNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	msgs := s.conversations[patientID]
	out := make([]domain.Message, len(msgs))
	copy(out, msgs)
	return out, nil
}

// Send appends the message with status sent and schedules the read receipt.
func (s *messagingService) Send(_ context.Context, patientID, senderID, text string) (domain.Message, error) {
	if strings.TrimSpace(text) == "" {
		return domain.Message{}, ErrEmptyMessage
	}
	if _, ok := s.store.Patient(patientID); !ok {
		return domain.Message{}, ErrPatientNotFound
	}

	msg := domain.Message{
		ID:        uuid.NewString(),
		SenderID:  senderID,
		Text:      text,
		Timestamp: s.now().Format("15:04"),
		Status:    domain.MessageStatusSent,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.conversations[patientID] = append(s.conversations[patientID], msg)

	if s.timers[patientID] == nil {
		s.timers[patientID] = map[string]*time.Timer{}
	}
	msgID := msg.ID
	s.timers[patientID][msgID] = time.AfterFunc(s.delay, func() {
		s.markRead(patientID, msgID)
	})

	return msg, nil
}

func (s *messagingService) markRead(patientID, msgID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.timers[patientID], msgID)
	msgs := s.conversations[patientID]
	for i, m := range msgs {
		if m.ID == msgID {
			msgs[i].Status = domain.MessageStatusRead
			return
		}
	}
}

// CloseConversation cancels the conversation's pending receipts. Messages
// already flipped stay read; still-pending ones stay sent.
func (s *messagingService) CloseConversation(patientID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, t := range s.timers[patientID] {
		t.Stop()
		delete(s.timers[patientID], id)
	}
}

// Shutdown cancels every pending receipt across all conversations.
func (s *messagingService) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for pid, byMsg := range s.timers {
		for id, t := range byMsg {
			t.Stop()
			delete(byMsg, id)
		}
		delete(s.timers, pid)
	}
}
