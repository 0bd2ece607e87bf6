package registration

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature wires the registration service into the application.
type Feature struct {
	service *Service
	logger  *zap.Logger
	enabled bool
}

// NewFeature creates the registration feature. It is disabled when the
// database connection is missing.
func NewFeature(db *gorm.DB, logger *zap.Logger) *Feature {
	f := &Feature{logger: logger, enabled: db != nil}
	if f.enabled {
		f.service = NewService(NewStore(db), logger)
	}
	return f
}

// Name returns the feature name.
func (f *Feature) Name() string { return "registration" }

// IsEnabled reports whether the feature can be loaded.
func (f *Feature) IsEnabled() bool { return f.enabled }

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	NewHandler(f.service, f.logger).RegisterRoutes(app)
	return nil
}
