package service

import (
	"cyberwalk_backend/internal/game"
	"cyberwalk_backend/internal/model"
	"cyberwalk_backend/internal/repository"
	"cyberwalk_backend/pkg/monitoring"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RoomService struct {
	RoomRepo *repository.RoomRepository
	Engine   *game.Engine
	DB       *gorm.DB
}

func NewRoomService(roomRepo *repository.RoomRepository, engine *game.Engine, db *gorm.DB) *RoomService {
	return &RoomService{
		RoomRepo: roomRepo,
		Engine:   engine,
		DB:       db,
	}
}

// CreateRoom opens a fresh WAITING room under a short shareable code.
func (s *RoomService) CreateRoom() (*model.GameRoom, error) {
	room := &model.GameRoom{
		RoomCode:     newRoomCode(),
		Status:       model.RoomWaiting,
		GamePhase:    model.PhaseLevelSelect,
		AttackerTurn: true,
		CurrentRound: 1,
		MaxRounds:    3,
	}
	if err := s.RoomRepo.Create(room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *RoomService) JoinRoom(code string, role model.PlayerRole) (*model.GameRoom, error) {
	var joined *model.GameRoom
	var started bool
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		room, err := s.RoomRepo.FindByCodeForUpdate(tx, code)
		if err != nil {
			return err
		}
		wasWaiting := room.Status == model.RoomWaiting
		if err := s.Engine.Join(room, role); err != nil {
			return err
		}
		started = wasWaiting && room.Status == model.RoomPlaying
		if err := tx.Save(room).Error; err != nil {
			return err
		}
		joined = room
		return nil
	})
	if err != nil {
		return nil, err
	}
	if started {
		monitoring.ActiveRoomGauge.Inc()
	}
	return joined, nil
}

func (s *RoomService) GetRoomStatus(code string) (*model.GameRoom, error) {
	return s.RoomRepo.FindByCode(code)
}

func newRoomCode() string {
	return strings.ToUpper(uuid.New().String()[:6])
}
