package domain

// EnumerationDrift is the difference between an enumeration and the labels of
// its Postgres type. Label order is not compared: ALTER TYPE ... ADD VALUE
// may place labels anywhere.
type EnumerationDrift struct {
	Name        string   `json:"name"`
	PGType      string   `json:"pg_type"`
	TypeMissing bool     `json:"type_missing"`
	Missing     []string `json:"missing,omitempty"`
	Extra       []string `json:"extra,omitempty"`
}

func (d EnumerationDrift) InSync() bool {
	return !d.TypeMissing && len(d.Missing) == 0 && len(d.Extra) == 0
}

// DriftReport aggregates the drift of every enumeration.
type DriftReport struct {
	InSync       bool               `json:"in_sync"`
	Enumerations []EnumerationDrift `json:"enumerations"`
}

// CompareLabels computes the drift of e against the database labels. found is
// false when the Postgres type does not exist.
func CompareLabels(e Enumeration, labels []string, found bool) EnumerationDrift {
	d := EnumerationDrift{Name: e.Name, PGType: e.PGType}
	if !found {
		d.TypeMissing = true
		d.Missing = append([]string(nil), e.Members...)
		return d
	}

	inDB := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		inDB[l] = struct{}{}
	}
	for _, m := range e.Members {
		if _, ok := inDB[m]; !ok {
			d.Missing = append(d.Missing, m)
		}
	}
	for _, l := range labels {
		if !e.Contains(l) {
			d.Extra = append(d.Extra, l)
		}
	}
	return d
}

// NewDriftReport builds a report from the labels returned by an EnumLabelRepository.
func NewDriftReport(labels map[string][]string) *DriftReport {
	report := &DriftReport{InSync: true}
	for _, e := range Enumerations() {
		l, ok := labels[e.PGType]
		d := CompareLabels(e, l, ok)
		if !d.InSync() {
			report.InSync = false
		}
		report.Enumerations = append(report.Enumerations, d)
	}
	return report
}
