package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/saransh1220/storefront-vocabulary/internal/domain"
)

var (
	rejectedValuesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vocabulary_rejected_values_total",
		Help: "Tokens rejected because they are not members of the target enumeration.",
	}, []string{"enumeration"})

	driftedEnumerations = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "vocabulary_drifted_enumerations",
		Help: "Enumerations whose Postgres type differs from the application vocabulary at the last check.",
	})
)

type VocabularyService interface {
	List() []domain.Enumeration
	Describe(name string) (domain.Enumeration, error)
	Parse(name, token string) (string, error)
	CheckDrift(ctx context.Context) (*domain.DriftReport, error)
}

type vocabularyService struct {
	repo   domain.EnumLabelRepository
	logger *slog.Logger
}

func NewVocabularyService(repo domain.EnumLabelRepository, logger *slog.Logger) VocabularyService {
	if logger == nil {
		logger = slog.Default()
	}
	return &vocabularyService{repo: repo, logger: logger}
}

func (s *vocabularyService) List() []domain.Enumeration {
	return domain.Enumerations()
}

func (s *vocabularyService) Describe(name string) (domain.Enumeration, error) {
	return domain.Lookup(name)
}

// Parse validates token against the named enumeration. Rejections are counted
// and returned unchanged; a token is never coerced to a default member.
func (s *vocabularyService) Parse(name, token string) (string, error) {
	e, err := domain.Lookup(name)
	if err != nil {
		return "", err
	}

	v, err := e.Parse(token)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownEnumerationValue) {
			rejectedValuesTotal.WithLabelValues(e.Name).Inc()
			s.logger.Debug("rejected enumeration value", "enumeration", e.Name, "value", token)
		}
		return "", err
	}
	return v, nil
}

func (s *vocabularyService) CheckDrift(ctx context.Context) (*domain.DriftReport, error) {
	labels, err := s.repo.ListEnumLabels(ctx, domain.PGTypes())
	if err != nil {
		return nil, fmt.Errorf("check drift: %w", err)
	}

	report := domain.NewDriftReport(labels)

	drifted := 0
	for _, d := range report.Enumerations {
		if d.InSync() {
			continue
		}
		drifted++
		s.logger.Warn("enumeration drift detected",
			"enumeration", d.Name,
			"pg_type", d.PGType,
			"type_missing", d.TypeMissing,
			"missing", d.Missing,
			"extra", d.Extra,
		)
	}
	driftedEnumerations.Set(float64(drifted))

	return report, nil
}
