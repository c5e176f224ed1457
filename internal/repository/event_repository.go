package repository

import (
	"github.com/eventlite/eventlite-api/internal/database"
	"github.com/eventlite/eventlite-api/internal/models"
	"github.com/eventlite/eventlite-api/internal/utils"
	"gorm.io/gorm"
)

// GormEventRepository is a GORM implementation of EventRepository
type GormEventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *gorm.DB) EventRepository {
	return &GormEventRepository{db: db}
}

// Create creates a new event
func (r *GormEventRepository) Create(event *models.Event) error {
	return r.db.Create(event).Error
}

// FindByID finds an event by ID with optional preloading
func (r *GormEventRepository) FindByID(id uint64, preload ...string) (*models.Event, error) {
	var event models.Event
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&event, id).Error; err != nil {
		return nil, err
	}

	return &event, nil
}

// List retrieves events with title search and pagination
func (r *GormEventRepository) List(filter EventFilter) ([]models.Event, int64, error) {
	var events []models.Event

	query := r.db.Model(&models.Event{})

	if filter.Query != "" {
		// LOWER/LIKE instead of ILIKE so the same query runs on sqlite
		query = query.Where("LOWER(title) LIKE LOWER(?)", "%"+filter.Query+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.Order("created_at DESC")
	if filter.Page > 0 && filter.Limit > 0 {
		listQuery = listQuery.Scopes(database.Paginate(utils.PaginationParams{
			Offset: (filter.Page - 1) * filter.Limit,
			Limit:  filter.Limit,
		}))
	}

	if err := listQuery.Preload("Organizer").Preload("Sessions").Find(&events).Error; err != nil {
		return nil, 0, err
	}

	return events, total, nil
}

// ListByOrganizer lists an organizer's events, newest first
func (r *GormEventRepository) ListByOrganizer(organizerID uint64) ([]models.Event, error) {
	var events []models.Event
	if err := r.db.Where("organizer_id = ?", organizerID).
		Order("created_at DESC").
		Preload("Sessions").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// Update updates an event
func (r *GormEventRepository) Update(event *models.Event) error {
	return r.db.Save(event).Error
}

// Delete removes an event and all dependent rows in a transaction
func (r *GormEventRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).Delete(&models.Session{}).Error; err != nil {
			return err
		}

		if err := tx.Where("event_id = ?", id).Delete(&models.Bookmark{}).Error; err != nil {
			return err
		}

		if err := tx.Where("event_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Event{}, id).Error
	})
}

// CreateSession creates a session inside an event
func (r *GormEventRepository) CreateSession(session *models.Session) error {
	return r.db.Create(session).Error
}
