package service

import (
	"context"
	"cyberwalk_backend/internal/game"
	"cyberwalk_backend/internal/model"
	"cyberwalk_backend/internal/repository"
	"cyberwalk_backend/pkg/logger"
	"cyberwalk_backend/pkg/monitoring"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	stateCacheKeyPrefix = "cyberwalk:state:"
	stateCacheTTL       = 3 * time.Second
)

// GamePlayService runs gameplay commands. Each command is one locking
// read-modify-write transaction on the room; the engine supplies the
// transition, the service supplies atomicity and the cached read side.
type GamePlayService struct {
	Engine   *game.Engine
	RoomRepo *repository.RoomRepository
	Content  *repository.ContentRepository
	DB       *gorm.DB
	Redis    *redis.Client
}

func NewGamePlayService(engine *game.Engine, roomRepo *repository.RoomRepository, content *repository.ContentRepository, db *gorm.DB, rdb *redis.Client) *GamePlayService {
	return &GamePlayService{
		Engine:   engine,
		RoomRepo: roomRepo,
		Content:  content,
		DB:       db,
		Redis:    rdb,
	}
}

func (s *GamePlayService) StartNewGame(code string) (*model.GameRoom, error) {
	return s.runCommand(code, "start", s.Engine.StartNewGame)
}

func (s *GamePlayService) SelectLevel(code string, levelID uint) (*model.GameRoom, error) {
	return s.runCommand(code, "select_level", func(room *model.GameRoom) error {
		return s.Engine.SelectLevel(room, levelID)
	})
}

func (s *GamePlayService) SelectDefenderProfile(code string, profileID uint) (*model.GameRoom, error) {
	return s.runCommand(code, "select_profile", func(room *model.GameRoom) error {
		return s.Engine.SelectProfile(room, profileID)
	})
}

func (s *GamePlayService) SelectAttackScenario(code string, scenarioID uint) (*model.GameRoom, error) {
	return s.runCommand(code, "select_scenario", func(room *model.GameRoom) error {
		return s.Engine.SelectScenario(room, scenarioID)
	})
}

func (s *GamePlayService) SelectAttackOption(code string, optionID uint) (*model.GameRoom, error) {
	return s.runCommand(code, "select_option", func(room *model.GameRoom) error {
		return s.Engine.SelectOption(room, optionID)
	})
}

func (s *GamePlayService) MakeDefenderChoice(code string, choiceID uint) (*model.GameRoom, error) {
	return s.runCommand(code, "defender_choice", func(room *model.GameRoom) error {
		return s.Engine.ApplyChoice(room, choiceID)
	})
}

func (s *GamePlayService) ContinueToNextRound(code string) (*model.GameRoom, error) {
	return s.runCommand(code, "next_round", s.Engine.ContinueRound)
}

// GetGameState renders the projection, serving a short-lived Redis copy when
// one exists. Both clients poll this endpoint, so the cache absorbs most of
// the read traffic between commands.
func (s *GamePlayService) GetGameState(ctx context.Context, code string) (*game.GameState, error) {
	key := stateCacheKeyPrefix + code

	if val, err := s.Redis.Get(ctx, key).Result(); err == nil {
		var cached game.GameState
		if json.Unmarshal([]byte(val), &cached) == nil {
			return &cached, nil
		}
	} else if err != redis.Nil {
		logger.Log.Warn("state cache read failed", zap.Error(err))
	}

	room, err := s.RoomRepo.FindByCode(code)
	if err != nil {
		return nil, err
	}

	var level *model.Level
	var profile *model.DefenderProfile
	var option *model.AttackOption

	// Pointers can briefly outlive deleted content; missing entities
	// degrade to empty narrative fields rather than failing the poll.
	if room.CurrentLevelID != nil {
		level, _ = s.Content.FindLevel(*room.CurrentLevelID)
	}
	if room.CurrentDefenderProfileID != nil {
		profile, _ = s.Content.FindProfile(*room.CurrentDefenderProfileID)
	}
	if room.CurrentAttackOptionID != nil {
		option, _ = s.Content.FindOption(*room.CurrentAttackOptionID)
	}

	state := game.Project(room, level, profile, option)

	if data, err := json.Marshal(state); err == nil {
		if err := s.Redis.Set(ctx, key, data, stateCacheTTL).Err(); err != nil {
			logger.Log.Warn("state cache write failed", zap.Error(err))
		}
	}

	return state, nil
}

func (s *GamePlayService) runCommand(code, command string, apply func(*model.GameRoom) error) (*model.GameRoom, error) {
	var updated *model.GameRoom
	var wasPlaying bool
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		room, err := s.RoomRepo.FindByCodeForUpdate(tx, code)
		if err != nil {
			return err
		}
		wasPlaying = room.Status == model.RoomPlaying
		if err := apply(room); err != nil {
			return err
		}
		if err := tx.Save(room).Error; err != nil {
			return err
		}
		updated = room
		return nil
	})
	if err != nil {
		monitoring.GameCommandCounter.WithLabelValues(command, "error").Inc()
		return nil, err
	}

	monitoring.GameCommandCounter.WithLabelValues(command, "ok").Inc()
	if nowPlaying := updated.Status == model.RoomPlaying; nowPlaying != wasPlaying {
		if nowPlaying {
			monitoring.ActiveRoomGauge.Inc()
		} else {
			monitoring.ActiveRoomGauge.Dec()
		}
	}
	s.invalidateState(code)
	return updated, nil
}

func (s *GamePlayService) invalidateState(code string) {
	if err := s.Redis.Del(context.Background(), stateCacheKeyPrefix+code).Err(); err != nil {
		logger.Log.Warn("state cache invalidation failed", zap.String("room", code), zap.Error(err))
	}
}
