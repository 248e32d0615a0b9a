package util

import "errors"

var (
	ErrRoomNotFound     = errors.New("room not found")
	ErrLevelNotFound    = errors.New("level not found")
	ErrProfileNotFound  = errors.New("defender profile not found")
	ErrScenarioNotFound = errors.New("attack scenario not found")
	ErrOptionNotFound   = errors.New("attack option not found")
	ErrChoiceNotFound   = errors.New("defender choice not found")
	ErrSceneNotFound    = errors.New("story scene not found")
	ErrSessionNotFound  = errors.New("session not found")

	ErrNotAttackerTurn = errors.New("not attacker's turn")
	ErrNotDefenderTurn = errors.New("not defender's turn")

	ErrRoleTaken   = errors.New("role already taken")
	ErrInvalidRole = errors.New("invalid role")

	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrInvalidRiskLevel   = errors.New("risk level must be between 1 and 5")
	ErrInvalidPersonaList = errors.New("relationships and vulnerabilities must be string lists")
)
