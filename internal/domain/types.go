// Package domain holds the plain data records shared by every service.
// JSON tags match the persisted-state layout the web client writes to
// browser local storage, so both sides can read the same blobs.
package domain

// Patient condition labels. Display categories only; nothing branches on
// them beyond counting.
const (
	ConditionEndometriose = "Endometriose"
	ConditionSOP          = "SOP"
	ConditionTentante     = "Tentante"
	ConditionClimaterio   = "Climatério"
	ConditionGestante     = "Gestante"
)

const (
	PatientStatusAtivo    = "Ativo"
	PatientStatusPendente = "Pendente"
)

const (
	GoalStatusEmAndamento = "Em andamento"
	GoalStatusConcluida   = "Concluída"
	GoalStatusPausada     = "Pausada"
)

const (
	AppointmentTypePrimeiraConsulta = "Primeira Consulta"
	AppointmentTypeRetorno          = "Retorno"
	AppointmentTypeOnline           = "Online"
)

const (
	AppointmentStatusAgendada   = "Agendada"
	AppointmentStatusConfirmada = "Confirmada"
	AppointmentStatusConcluida  = "Concluída"
	AppointmentStatusCancelada  = "Cancelada"
)

const (
	MessageStatusSent      = "sent"
	MessageStatusDelivered = "delivered"
	MessageStatusRead      = "read"
)

type Patient struct {
	ID            string                `json:"id"`
	Name          string                `json:"name"`
	Age           int                   `json:"age"`
	Email         string                `json:"email"`
	Phone         string                `json:"phone,omitempty"`
	Condition     string                `json:"condition"`
	Stage         string                `json:"stage,omitempty"`
	Status        string                `json:"status"`
	LastVisit     string                `json:"lastVisit"`
	NextVisit     string                `json:"nextVisit"`
	AvatarURL     string                `json:"avatarUrl"`
	SymptomsLog   []DailyLog            `json:"symptomsLog"`
	Anamnesis     *Anamnesis            `json:"anamnesis,omitempty"`
	Anthropometry []AnthropometryRecord `json:"anthropometry"`
	MealPlan      *MealPlan             `json:"mealPlan,omitempty"`
	Tracking      *PatientTracking      `json:"tracking,omitempty"`
	Goals         []PatientGoal         `json:"goals,omitempty"`
}

type PatientGoal struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Deadline    string `json:"deadline"`
	Status      string `json:"status"`
	Progress    int    `json:"progress"` // 0 to 100
}

type PatientTracking struct {
	WaterGlassCount int               `json:"waterGlassCount"`
	WaterGoal       int               `json:"waterGoal"`
	Meals           []TrackedMeal     `json:"meals"`
	Activities      []TrackedActivity `json:"activities"`
}

type TrackedMeal struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Time      string `json:"time"`
	Content   string `json:"content"`
	PhotoURL  string `json:"photoUrl,omitempty"`
	Adherence string `json:"adherence"` // Sim | Parcial | Não
}

type TrackedActivity struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Duration  int    `json:"duration"`  // minutes
	Intensity string `json:"intensity"` // Leve | Moderada | Intensa
}

type Anamnesis struct {
	MainComplaint string    `json:"mainComplaint"`
	History       string    `json:"history"`
	Medications   []string  `json:"medications"`
	Supplements   []string  `json:"supplements"`
	Allergies     []string  `json:"allergies"`
	Lifestyle     Lifestyle `json:"lifestyle"`
}

type Lifestyle struct {
	Smoker           bool   `json:"smoker"`
	Alcohol          string `json:"alcohol"`
	PhysicalActivity string `json:"physicalActivity"`
}

type AnthropometryRecord struct {
	Date   string  `json:"date"` // natural key, one record per date
	Weight float64 `json:"weight"`
	Height float64 `json:"height"`
	Waist  float64 `json:"waist"`
	Hip    float64 `json:"hip"`
	BMI    float64 `json:"bmi"`
}

type MealPlan struct {
	Title       string `json:"title"`
	CaloricGoal int    `json:"caloricGoal"`
	Macros      Macros `json:"macros"`
	Meals       []Meal `json:"meals"`
}

// Macros are percentages of the caloric goal, not grams.
type Macros struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fats    int `json:"fats"`
}

type Meal struct {
	ID    string     `json:"id"`
	Time  string     `json:"time"` // HH:MM
	Name  string     `json:"name"`
	Items []FoodItem `json:"items"`
	Notes string     `json:"notes,omitempty"`
}

type FoodItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity string  `json:"quantity"` // free text, e.g. "2 unidades"
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Notes    string  `json:"notes,omitempty"`
}

type DailyLog struct {
	Date       string `json:"date"`
	PainLevel  int    `json:"painLevel"`
	Bloating   int    `json:"bloating"`
	Energy     int    `json:"energy"`
	CyclePhase string `json:"cyclePhase,omitempty"` // Menstrual | Folicular | Ovulatória | Lútea
	Notes      string `json:"notes,omitempty"`
}

type Appointment struct {
	ID        string `json:"id"`
	PatientID string `json:"patientId"`
	// PatientName is a denormalized copy taken at creation. It is not
	// cascaded on rename so past appointments survive patient deletion.
	PatientName string `json:"patientName"`
	Date        string `json:"date"` // ISO date, YYYY-MM-DD
	Time        string `json:"time"` // HH:MM
	Type        string `json:"type"`
	Status      string `json:"status"`
}

type Message struct {
	ID        string `json:"id"`
	SenderID  string `json:"senderId"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
	Status    string `json:"status"`
}

type Profile struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

type NotificationPrefs struct {
	Appointments bool `json:"appointments"`
	Messages     bool `json:"messages"`
	Diaries      bool `json:"diaries"`
}
