package domain

// RegionalKnowledge tracks the scout's familiarity with one country.
type RegionalKnowledge struct {
	Country        string
	Level          float64
	Insights       []string
	Contacts       []string
	HiddenLeagues  []string
	InsightCrossed []float64
	ContactCrossed []float64
}

// HasInsight reports whether the identified insight is already unlocked.
func (k RegionalKnowledge) HasInsight(id string) bool {
	for _, v := range k.Insights {
		if v == id {
			return true
		}
	}
	return false
}

// HasContact reports whether the identified contact is already unlocked.
func (k RegionalKnowledge) HasContact(id string) bool {
	for _, v := range k.Contacts {
		if v == id {
			return true
		}
	}
	return false
}

// HasHiddenLeague reports whether the league was already discovered.
func (k RegionalKnowledge) HasHiddenLeague(id string) bool {
	for _, v := range k.HiddenLeagues {
		if v == id {
			return true
		}
	}
	return false
}

// CrossedInsight reports whether the insight threshold already fired.
func (k RegionalKnowledge) CrossedInsight(threshold float64) bool {
	for _, v := range k.InsightCrossed {
		if v == threshold {
			return true
		}
	}
	return false
}

// CrossedContact reports whether the contact threshold already fired.
func (k RegionalKnowledge) CrossedContact(threshold float64) bool {
	for _, v := range k.ContactCrossed {
		if v == threshold {
			return true
		}
	}
	return false
}
