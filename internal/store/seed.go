package store

import "github.com/mairapenna/nutriplan_backend/internal/domain"

// DefaultProfile and DefaultNotifications are installed when the settings
// blobs are missing or unreadable.
func DefaultProfile() domain.Profile {
	return domain.Profile{
		Name: "Maíra Penna",
		Role: "Nutricionista • CRN 12345",
	}
}

func DefaultNotifications() domain.NotificationPrefs {
	return domain.NotificationPrefs{
		Appointments: true,
		Messages:     true,
		Diaries:      false,
	}
}

// SeedPatients returns the built-in demo records. Used on first start, when
// a stored blob fails to parse, and on reset-all.
func SeedPatients() []domain.Patient {
	return []domain.Patient{
		{
			ID:        "1",
			Name:      "Ana Júlia Silva",
			Age:       28,
			Email:     "ana.ju@email.com",
			Condition: domain.ConditionEndometriose,
			Stage:     "Grau 2 - Profunda",
			Status:    domain.PatientStatusAtivo,
			LastVisit: "2026-10-15",
			NextVisit: "2026-11-20",
			AvatarURL: "https://picsum.photos/200/200?random=1",
			Goals: []domain.PatientGoal{
				{ID: "g1", Description: "Reduzir distensão abdominal (Inchaço)", Deadline: "2026-12-01", Status: domain.GoalStatusEmAndamento, Progress: 65},
				{ID: "g2", Description: "Regularizar intestino", Deadline: "2026-11-15", Status: domain.GoalStatusConcluida, Progress: 100},
			},
			Anamnesis: &domain.Anamnesis{
				MainComplaint: "Dores pélvicas intensas durante o período menstrual e distensão abdominal frequente.",
				History:       "Diagnosticada com endometriose profunda há 2 anos. Realizou videolaparoscopia em 2022. Relata piora nos sintomas inflamatórios ao consumir glúten. Sono irregular.",
				Medications:   []string{"Dienogeste 2mg"},
				Supplements:   []string{"Omega 3", "N-Acetilcisteína"},
				Allergies:     []string{"Camarão", "Penicilina"},
				Lifestyle: domain.Lifestyle{
					Smoker:           false,
					Alcohol:          "Socialmente (vinho, 1x semana)",
					PhysicalActivity: "Pilates 2x na semana",
				},
			},
			Anthropometry: []domain.AnthropometryRecord{
				{Date: "2026-08-10", Weight: 62.5, Height: 165, Waist: 72, Hip: 98, BMI: 22.9},
				{Date: "2026-09-15", Weight: 61.8, Height: 165, Waist: 70, Hip: 97, BMI: 22.7},
				{Date: "2026-10-15", Weight: 60.5, Height: 165, Waist: 68, Hip: 96, BMI: 22.2},
			},
			MealPlan: &domain.MealPlan{
				Title:       "Protocolo Anti-inflamatório Fase 1",
				CaloricGoal: 1800,
				Macros:      domain.Macros{Protein: 30, Carbs: 40, Fats: 30},
				Meals: []domain.Meal{
					{
						ID: "1", Time: "07:30", Name: "Café da Manhã",
						Items: []domain.FoodItem{
							{ID: "f1", Name: "Shot matinal: Cúrcuma + Própolis + Limão", Quantity: "1 dose", Calories: 15, Protein: 0, Carbs: 3, Fats: 0, Notes: "Tomar em jejum"},
							{ID: "f2", Name: "Ovos mexidos", Quantity: "2 unidades", Calories: 140, Protein: 12, Carbs: 1, Fats: 10},
							{ID: "f3", Name: "Espinafre refogado", Quantity: "1 xícara", Calories: 20, Protein: 2, Carbs: 3, Fats: 0},
							{ID: "f4", Name: "Mamão papaya", Quantity: "1/2 unidade", Calories: 60, Protein: 1, Carbs: 15, Fats: 0},
							{ID: "f5", Name: "Semente de linhaça", Quantity: "1 col. sopa", Calories: 55, Protein: 2, Carbs: 3, Fats: 4},
						},
						Notes: "Priorizar ovos caipiras. Usar pouco sal.",
					},
					{
						ID: "2", Time: "10:30", Name: "Lanche da Manhã",
						Items: []domain.FoodItem{
							{ID: "f6", Name: "Mix de castanhas", Quantity: "30g", Calories: 180, Protein: 5, Carbs: 6, Fats: 16},
							{ID: "f7", Name: "Chá de Gengibre", Quantity: "1 xícara", Calories: 0, Protein: 0, Carbs: 0, Fats: 0},
						},
					},
					{
						ID: "3", Time: "13:00", Name: "Almoço",
						Items: []domain.FoodItem{
							{ID: "f8", Name: "Salada de folhas verdes", Quantity: "à vontade", Calories: 15, Protein: 1, Carbs: 3, Fats: 0},
							{ID: "f9", Name: "Peixe grelhado (Tilápia)", Quantity: "120g", Calories: 150, Protein: 31, Carbs: 0, Fats: 3},
							{ID: "f10", Name: "Arroz negro", Quantity: "4 col. sopa", Calories: 140, Protein: 3, Carbs: 30, Fats: 1},
							{ID: "f11", Name: "Brócolis no vapor", Quantity: "1 xícara", Calories: 35, Protein: 3, Carbs: 6, Fats: 0},
							{ID: "f12", Name: "Azeite de oliva extra virgem", Quantity: "1 fio", Calories: 40, Protein: 0, Carbs: 0, Fats: 4.5},
						},
						Notes: "Temperar salada com limão e azeite.",
					},
					{
						ID: "4", Time: "16:00", Name: "Lanche da Tarde",
						Items: []domain.FoodItem{
							{ID: "f13", Name: "Iogurte natural sem lactose", Quantity: "1 unidade", Calories: 100, Protein: 8, Carbs: 12, Fats: 3},
							{ID: "f14", Name: "Morangos", Quantity: "6 unidades", Calories: 30, Protein: 1, Carbs: 7, Fats: 0},
							{ID: "f15", Name: "Aveia em flocos", Quantity: "2 col. sopa", Calories: 70, Protein: 3, Carbs: 12, Fats: 1.5},
						},
					},
					{
						ID: "5", Time: "20:00", Name: "Jantar",
						Items: []domain.FoodItem{
							{ID: "f16", Name: "Sopa de abóbora c/ gengibre", Quantity: "1 prato fundo", Calories: 180, Protein: 4, Carbs: 35, Fats: 3},
							{ID: "f17", Name: "Frango desfiado", Quantity: "100g", Calories: 165, Protein: 31, Carbs: 0, Fats: 3.6},
						},
						Notes: "Evitar refeições pesadas após as 20h para não atrapalhar o sono e a digestão.",
					},
				},
			},
			SymptomsLog: []domain.DailyLog{
				{Date: "2026-10-25", PainLevel: 8, Bloating: 7, Energy: 3, CyclePhase: "Menstrual"},
				{Date: "2026-10-26", PainLevel: 6, Bloating: 6, Energy: 4, CyclePhase: "Menstrual"},
				{Date: "2026-10-27", PainLevel: 4, Bloating: 3, Energy: 6, CyclePhase: "Folicular"},
				{Date: "2026-10-28", PainLevel: 2, Bloating: 1, Energy: 8, CyclePhase: "Folicular"},
				{Date: "2026-10-29", PainLevel: 1, Bloating: 1, Energy: 9, CyclePhase: "Folicular"},
			},
		},
		{
			ID:        "2",
			Name:      "Carla Mendez",
			Age:       34,
			Email:     "carla.m@email.com",
			Condition: domain.ConditionTentante,
			Stage:     "Pré-concepção",
			Status:    domain.PatientStatusAtivo,
			LastVisit: "2026-10-01",
			NextVisit: "2026-11-05",
			AvatarURL: "https://picsum.photos/200/200?random=2",
			Goals: []domain.PatientGoal{
				{ID: "g3", Description: "Melhorar qualidade ovocitária", Deadline: "2027-01-10", Status: domain.GoalStatusEmAndamento, Progress: 40},
				{ID: "g4", Description: "Reduzir consumo de café", Deadline: "2026-11-01", Status: domain.GoalStatusConcluida, Progress: 100},
			},
			SymptomsLog: []domain.DailyLog{},
		},
		{
			ID:          "3",
			Name:        "Fernanda Torres",
			Age:         45,
			Email:       "nanda@email.com",
			Condition:   domain.ConditionClimaterio,
			Stage:       "Inicial",
			Status:      domain.PatientStatusPendente,
			LastVisit:   "2026-09-20",
			NextVisit:   "2026-11-10",
			AvatarURL:   "https://picsum.photos/200/200?random=3",
			Goals:       []domain.PatientGoal{},
			SymptomsLog: []domain.DailyLog{},
		},
		{
			ID:        "4",
			Name:      "Mariana Costa",
			Age:       25,
			Email:     "mari@email.com",
			Condition: domain.ConditionSOP,
			Status:    domain.PatientStatusAtivo,
			LastVisit: "2026-10-20",
			NextVisit: "2026-11-25",
			AvatarURL: "https://picsum.photos/200/200?random=4",
			Goals: []domain.PatientGoal{
				{ID: "g5", Description: "Perda de peso (5kg)", Deadline: "2026-12-25", Status: domain.GoalStatusEmAndamento, Progress: 20},
			},
			SymptomsLog: []domain.DailyLog{},
		},
	}
}

func SeedAppointments() []domain.Appointment {
	return []domain.Appointment{
		{ID: "101", PatientID: "1", PatientName: "Ana Júlia Silva", Date: "2026-10-30", Time: "09:00", Type: domain.AppointmentTypeRetorno, Status: domain.AppointmentStatusAgendada},
		{ID: "102", PatientID: "4", PatientName: "Mariana Costa", Date: "2026-10-30", Time: "11:00", Type: domain.AppointmentTypeOnline, Status: domain.AppointmentStatusAgendada},
		{ID: "103", PatientID: "2", PatientName: "Carla Mendez", Date: "2026-10-30", Time: "14:30", Type: domain.AppointmentTypePrimeiraConsulta, Status: domain.AppointmentStatusAgendada},
	}
}
