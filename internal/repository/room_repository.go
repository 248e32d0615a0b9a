package repository

import (
	"cyberwalk_backend/internal/model"
	"cyberwalk_backend/internal/util"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RoomRepository struct {
	DB *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{DB: db}
}

func (r *RoomRepository) Create(room *model.GameRoom) error {
	return r.DB.Create(room).Error
}

func (r *RoomRepository) FindByCode(code string) (*model.GameRoom, error) {
	var room model.GameRoom
	if err := r.DB.Where("room_code = ?", code).First(&room).Error; err != nil {
		return nil, notFound(err, util.ErrRoomNotFound)
	}
	return &room, nil
}

// FindByCodeForUpdate loads the room with a row lock inside tx. Commands on
// the same room serialize on this lock, so a losing concurrent command
// observes the committed turn flag and fails the turn check instead of
// double-applying counters.
func (r *RoomRepository) FindByCodeForUpdate(tx *gorm.DB, code string) (*model.GameRoom, error) {
	var room model.GameRoom
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("room_code = ?", code).First(&room).Error
	if err != nil {
		return nil, notFound(err, util.ErrRoomNotFound)
	}
	return &room, nil
}

func (r *RoomRepository) Save(room *model.GameRoom) error {
	return r.DB.Save(room).Error
}
