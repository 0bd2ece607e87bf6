package validation

import (
	"results-manager/core/extractor"
	"results-manager/core/legacyhtml"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature wires the validation service into the application.
type Feature struct {
	service *Service
	logger  *zap.Logger
	enabled bool
}

// NewFeature creates the validation feature. It is disabled when the
// database connection is missing, since there is nothing to validate
// against.
func NewFeature(db *gorm.DB, fetcher *legacyhtml.Client, extractorClient *extractor.Client, baseURL string, logger *zap.Logger) *Feature {
	f := &Feature{logger: logger, enabled: db != nil}
	if f.enabled {
		f.service = NewService(fetcher, extractorClient, NewStore(db), baseURL, logger)
	}
	return f
}

// Name returns the feature name.
func (f *Feature) Name() string { return "validation" }

// IsEnabled reports whether the feature can be loaded.
func (f *Feature) IsEnabled() bool { return f.enabled }

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	NewHandler(f.service, f.logger).RegisterRoutes(app)
	return nil
}
