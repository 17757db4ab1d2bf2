package messaging

import (
	"context"
	"testing"
	"time"

	"github.com/mairapenna/nutriplan_backend/internal/domain"
	"github.com/mairapenna/nutriplan_backend/internal/storage"
	"github.com/mairapenna/nutriplan_backend/internal/store"
)

func newTestService(t *testing.T, delay time.Duration) *messagingService {
	t.Helper()
	backend, err := storage.NewFileStorage(t.TempDir())
	if err != nil {
		t.Fatalf("file storage: %v", err)
	}
	svc := New(store.New(context.Background(), backend), delay).(*messagingService)
	t.Cleanup(svc.Shutdown)
	return svc
}

func status(t *testing.T, svc *messagingService, patientID, msgID string) string {
	t.Helper()
	msgs, err := svc.List(context.Background(), patientID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, m := range msgs {
		if m.ID == msgID {
			return m.Status
		}
	}
	t.Fatalf("message %s not found", msgID)
	return ""
}

func TestSendStartsAsSent(t *testing.T) {
	svc := newTestService(t, time.Hour)

	msg, err := svc.Send(context.Background(), "1", SenderNutri, "Como passou a semana?")
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if msg.Status != domain.MessageStatusSent {
		t.Errorf("status = %q, want %q", msg.Status, domain.MessageStatusSent)
	}
	if got := status(t, svc, "1", msg.ID); got != domain.MessageStatusSent {
		t.Errorf("stored status = %q, want still %q", got, domain.MessageStatusSent)
	}
}

func TestReadReceiptFires(t *testing.T) {
	svc := newTestService(t, 10*time.Millisecond)

	msg, err := svc.Send(context.Background(), "1", SenderNutri, "oi")
	if err != nil {
		t.Fatalf("send: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if status(t, svc, "1", msg.ID) == domain.MessageStatusRead {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("message never flipped to read")
}

func TestCloseConversationCancelsReceipt(t *testing.T) {
	svc := newTestService(t, 50*time.Millisecond)

	msg, err := svc.Send(context.Background(), "1", SenderNutri, "oi")
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	svc.CloseConversation("1")

	time.Sleep(200 * time.Millisecond)
	if got := status(t, svc, "1", msg.ID); got != domain.MessageStatusSent {
		t.Errorf("status = %q, want cancelled receipt to leave it %q", got, domain.MessageStatusSent)
	}
}

func TestCloseConversationScopedToPatient(t *testing.T) {
	svc := newTestService(t, 50*time.Millisecond)
	ctx := context.Background()

	m1, _ := svc.Send(ctx, "1", SenderNutri, "para ana")
	m2, _ := svc.Send(ctx, "2", SenderNutri, "para carla")
	svc.CloseConversation("1")

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if status(t, svc, "2", m2.ID) == domain.MessageStatusRead {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	if got := status(t, svc, "2", m2.ID); got != domain.MessageStatusRead {
		t.Errorf("other conversation receipt should fire, got %q", got)
	}
	if got := status(t, svc, "1", m1.ID); got != domain.MessageStatusSent {
		t.Errorf("closed conversation status = %q, want %q", got, domain.MessageStatusSent)
	}
}

func TestSeededThreads(t *testing.T) {
	svc := newTestService(t, time.Hour)

	msgs, err := svc.List(context.Background(), "1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(msgs) != 3 {
		t.Errorf("seeded messages = %d, want 3", len(msgs))
	}
}

func TestSendValidation(t *testing.T) {
	svc := newTestService(t, time.Hour)
	ctx := context.Background()

	if _, err := svc.Send(ctx, "1", SenderNutri, "   "); err != ErrEmptyMessage {
		t.Errorf("err = %v, want %v", err, ErrEmptyMessage)
	}
	if _, err := svc.Send(ctx, "missing", SenderNutri, "oi"); err != ErrPatientNotFound {
		t.Errorf("err = %v, want %v", err, ErrPatientNotFound)
	}
}
