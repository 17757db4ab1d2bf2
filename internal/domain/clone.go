package domain

// Clone returns a deep copy of the patient. Snapshot getters hand these out
// so callers can mutate nested collections without touching canonical state.
func (p Patient) Clone() Patient {
	out := p
	out.SymptomsLog = cloneSlice(p.SymptomsLog)
	out.Anthropometry = cloneSlice(p.Anthropometry)
	out.Goals = cloneSlice(p.Goals)

	if p.Anamnesis != nil {
		a := *p.Anamnesis
		a.Medications = cloneSlice(p.Anamnesis.Medications)
		a.Supplements = cloneSlice(p.Anamnesis.Supplements)
		a.Allergies = cloneSlice(p.Anamnesis.Allergies)
		out.Anamnesis = &a
	}
	if p.MealPlan != nil {
		mp := *p.MealPlan
		mp.Meals = make([]Meal, len(p.MealPlan.Meals))
		for i, m := range p.MealPlan.Meals {
			m.Items = cloneSlice(m.Items)
			mp.Meals[i] = m
		}
		out.MealPlan = &mp
	}
	if p.Tracking != nil {
		t := *p.Tracking
		t.Meals = cloneSlice(p.Tracking.Meals)
		t.Activities = cloneSlice(p.Tracking.Activities)
		out.Tracking = &t
	}
	return out
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
