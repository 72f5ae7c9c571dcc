// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"agroalert/internal/domain/entity"
	domainerrors "agroalert/internal/domain/errors"
	"agroalert/internal/domain/repository"
	"agroalert/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// alertRepository implements the repository.AlertRepository interface.
type alertRepository struct {
	db *gorm.DB
}

// NewAlertRepository is the constructor for alertRepository.
func NewAlertRepository(db *gorm.DB) repository.AlertRepository {
	return &alertRepository{
		db: db,
	}
}

// Create persists a new alert.
func (repo *alertRepository) Create(ctx context.Context, alert *entity.Alert) error {
	alertM := fromAlertDomain(alert)

	if err := repo.db.WithContext(ctx).Create(alertM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrAlertCreationFailed.WrapMessage("missing required alert information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create alert")
	}

	// Update the entity with generated values
	alert.ID = alertM.ID

	return nil
}

// FindByID retrieves an alert by its unique ID, including its notified-user list.
func (repo *alertRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Alert, error) {
	var alertM model.AlertModel

	if err := repo.db.WithContext(ctx).
		Preload("NotifiedUsers", func(db *gorm.DB) *gorm.DB {
			return db.Order("notified_at ASC")
		}).
		Where("id = ?", id).
		First(&alertM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAlertNotFound
		}

		return nil, errors.Wrap(err, "failed to find alert by ID")
	}

	return toAlertDomain(&alertM), nil
}

// FindWithinRadius performs a PostGIS geographic query returning every alert
// whose location lies within radiusMeters of the given point, ordered nearest
// first via ST_Distance.
func (repo *alertRepository) FindWithinRadius(ctx context.Context, lat, lon, radiusMeters float64) ([]*entity.Alert, error) {
	var alertModels []*model.AlertModel

	query := `
		SELECT *
		FROM alerts
		WHERE ST_DWithin(
		  location,
		  ST_SetSRID(ST_MakePoint(?, ?), 4326),
		  ?
		)
		ORDER BY ST_Distance(
		  location,
		  ST_SetSRID(ST_MakePoint(?, ?), 4326)
		) ASC
	`

	if err := repo.db.WithContext(ctx).
		Raw(query, lon, lat, radiusMeters, lon, lat).
		Scan(&alertModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find alerts within radius")
	}

	if len(alertModels) == 0 {
		return []*entity.Alert{}, nil
	}

	// Raw scans bypass GORM preloading, so resolve the notified-user lists
	// with one batched query instead of one per alert.
	alertIDs := make([]uuid.UUID, 0, len(alertModels))
	for _, alertM := range alertModels {
		alertIDs = append(alertIDs, alertM.ID)
	}

	var notifiedModels []*model.AlertNotifiedUserModel
	if err := repo.db.WithContext(ctx).
		Where("alert_id IN ?", alertIDs).
		Order("notified_at ASC").
		Find(&notifiedModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load notified users for alerts")
	}

	notifiedByAlert := make(map[uuid.UUID][]model.AlertNotifiedUserModel, len(alertModels))
	for _, notifiedM := range notifiedModels {
		notifiedByAlert[notifiedM.AlertID] = append(notifiedByAlert[notifiedM.AlertID], *notifiedM)
	}

	alerts := make([]*entity.Alert, 0, len(alertModels))
	for _, alertM := range alertModels {
		alertM.NotifiedUsers = notifiedByAlert[alertM.ID]
		alerts = append(alerts, toAlertDomain(alertM))
	}

	return alerts, nil
}

// AppendNotifiedUsers records the given users as notified for the alert.
// The composite primary key plus ON CONFLICT DO NOTHING makes retried
// dispatches idempotent: already-recorded users are skipped.
func (repo *alertRepository) AppendNotifiedUsers(ctx context.Context, alertID uuid.UUID, userIDs []uuid.UUID) error {
	if len(userIDs) == 0 {
		return nil
	}

	now := time.Now()
	rows := make([]model.AlertNotifiedUserModel, 0, len(userIDs))
	for _, userID := range userIDs {
		rows = append(rows, model.AlertNotifiedUserModel{
			AlertID:    alertID,
			UserID:     userID,
			NotifiedAt: now,
		})
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append notified users")
	}

	return nil
}

// --- Mapper Functions ---

// toAlertDomain converts a GORM AlertModel to a domain Alert entity.
func toAlertDomain(data *model.AlertModel) *entity.Alert {
	if data == nil {
		return nil
	}

	notified := make([]uuid.UUID, 0, len(data.NotifiedUsers))
	for _, notifiedM := range data.NotifiedUsers {
		notified = append(notified, notifiedM.UserID)
	}

	return &entity.Alert{
		ID:            data.ID,
		Disease:       data.Disease,
		Severity:      entity.Severity(data.Severity),
		Latitude:      data.Latitude,
		Longitude:     data.Longitude,
		RadiusMeters:  data.RadiusMeters,
		AffectedCrop:  data.AffectedCrop,
		Timestamp:     data.Timestamp,
		NotifiedUsers: notified,
	}
}

// fromAlertDomain converts a domain Alert entity to a GORM AlertModel.
// The notified-user list is managed separately through AppendNotifiedUsers.
func fromAlertDomain(data *entity.Alert) *model.AlertModel {
	if data == nil {
		return nil
	}

	return &model.AlertModel{
		ID:           data.ID,
		Disease:      data.Disease,
		Severity:     string(data.Severity),
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		RadiusMeters: data.RadiusMeters,
		AffectedCrop: data.AffectedCrop,
		Timestamp:    data.Timestamp,
	}
}
