package manager

import (
	"time"
)

// MaxHistory bounds the number of finished games kept for the HUD graph.
const MaxHistory = 200

// GameRecord describes one finished game.
type GameRecord struct {
	StartTime time.Time
	EndTime   time.Time
	Score     int
}

func (r GameRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// StateManager keeps the score, the session high score and the history of
// finished games. Nothing is written to disk.
type StateManager struct {
	score       int
	highScore   int
	gamesPlayed int
	totalScore  int
	startTime   time.Time
	history     []GameRecord
}

func NewStateManager(now time.Time) *StateManager {
	return &StateManager{
		startTime: now,
		history:   make([]GameRecord, 0),
	}
}

func (sm *StateManager) Increment() {
	sm.score++
}

func (sm *StateManager) Score() int {
	return sm.score
}

func (sm *StateManager) HighScore() int {
	return sm.highScore
}

// CommitDeath closes the current game: the high score is raised if the
// score beat it, the game is recorded and the score starts over.
func (sm *StateManager) CommitDeath(now time.Time) GameRecord {
	if sm.score > sm.highScore {
		sm.highScore = sm.score
	}
	record := GameRecord{StartTime: sm.startTime, EndTime: now, Score: sm.score}
	sm.history = append(sm.history, record)
	if len(sm.history) > MaxHistory {
		sm.history = sm.history[len(sm.history)-MaxHistory:]
	}
	sm.gamesPlayed++
	sm.totalScore += sm.score
	sm.ResetScore(now)
	return record
}

// ResetScore starts a new game without touching the high score.
func (sm *StateManager) ResetScore(now time.Time) {
	sm.score = 0
	sm.startTime = now
}

func (sm *StateManager) GamesPlayed() int {
	return sm.gamesPlayed
}

// AverageScore over every game that ended in a collision.
func (sm *StateManager) AverageScore() float64 {
	if sm.gamesPlayed == 0 {
		return 0
	}
	return float64(sm.totalScore) / float64(sm.gamesPlayed)
}

// History returns the most recent finished games, oldest first.
func (sm *StateManager) History() []GameRecord {
	history := make([]GameRecord, len(sm.history))
	copy(history, sm.history)
	return history
}

func (sm *StateManager) StartTime() time.Time {
	return sm.startTime
}
