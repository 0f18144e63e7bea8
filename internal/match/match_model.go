package match

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/RonakJoshi-17/crickboard/internal/team"
	"gorm.io/gorm"
)

type MatchStatus string

const (
	StatusScheduled  MatchStatus = "scheduled"
	StatusInProgress MatchStatus = "in-progress"
	StatusCompleted  MatchStatus = "completed"
)

// Batting-side keys inside the score document.
const (
	TeamOneKey = "team1"
	TeamTwoKey = "team2"
)

// Delivery event kinds. Numeric kinds ("1","2","3","4","6") carry their run
// value in the string itself, matching the scoreboard wire format.
const (
	EventWide   = "Wide"
	EventNoBall = "No Ball"
	EventWicket = "Wicket"
)

// RunEvents maps the recognized numeric event kinds to their run value.
var RunEvents = map[string]int{
	"1": 1,
	"2": 2,
	"3": 3,
	"4": 4,
	"6": 6,
}

// WicketType for dismissals recorded by the scoring panel.
type WicketType string

const (
	WicketBowled  WicketType = "Bowled"
	WicketCaught  WicketType = "Caught"
	WicketRunOut  WicketType = "Run Out"
	WicketLBW     WicketType = "LBW"
	WicketStumped WicketType = "Stumped"
)

// ValidWicketTypes is the closed set accepted by the delivery processor.
var ValidWicketTypes = map[WicketType]bool{
	WicketBowled:  true,
	WicketCaught:  true,
	WicketRunOut:  true,
	WicketLBW:     true,
	WicketStumped: true,
}

// PlayerStat is a batsman's live figures. The roster copy and the
// current-striker/non-striker copies are independent; installing a player as
// striker always starts from a zero-valued copy.
type PlayerStat struct {
	Name  string `json:"name"`
	Runs  int    `json:"runs"`
	Balls int    `json:"balls"`
	Fours int    `json:"fours"`
	Sixes int    `json:"sixes"`
	Out   bool   `json:"out"`
}

// BowlerStat is the current bowler's live figures.
type BowlerStat struct {
	Name    string  `json:"name"`
	Overs   float64 `json:"overs"`
	Runs    int     `json:"runs"`
	Wickets int     `json:"wickets"`
}

func (b *BowlerStat) Value() (driver.Value, error) {
	if b == nil {
		return nil, nil
	}
	return json.Marshal(b)
}

func (b *BowlerStat) Scan(src interface{}) error {
	if src == nil {
		return nil
	}
	bytes, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("BowlerStat: expected []byte, got %T", src)
	}
	return json.Unmarshal(bytes, b)
}

// TeamScore is one side's innings tally.
type TeamScore struct {
	Runs    int          `json:"runs"`
	Wickets int          `json:"wickets"`
	Overs   float64      `json:"overs"`
	Players []PlayerStat `json:"players"`
}

// Score is the JSONB score document keyed by batting side.
type Score struct {
	Team1 TeamScore `json:"team1"`
	Team2 TeamScore `json:"team2"`
}

func (s Score) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan unmarshals the JSONB score column.
func (s *Score) Scan(src interface{}) error {
	if src == nil {
		return nil
	}
	bytes, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("Score: expected []byte, got %T", src)
	}
	return json.Unmarshal(bytes, s)
}

// BallEvent is the immutable record of one delivery.
type BallEvent struct {
	Over           int        `json:"over"`
	Ball           int        `json:"ball"`
	OverString     string     `json:"overString"`
	Event          string     `json:"event"`
	Team           string     `json:"team"` // "team1" or "team2"
	Batsman        string     `json:"batsman"`
	Bowler         string     `json:"bowler"`
	WicketType     WicketType `json:"wicketType,omitempty"`
	RunsOnWicket   int        `json:"runsOnWicket"`
	ExtraRuns      int        `json:"extraRuns"`      // 1 for Wide/No Ball, else 0
	AdditionalRuns int        `json:"additionalRuns"` // runs beyond the mandatory extra
}

// BallLog is the append-only ball-by-ball history (popped only by undo).
type BallLog []BallEvent

func (l BallLog) Value() (driver.Value, error) {
	if l == nil {
		l = BallLog{}
	}
	return json.Marshal(l)
}

// Scan unmarshals the JSONB history column.
func (l *BallLog) Scan(src interface{}) error {
	if src == nil {
		return nil
	}
	bytes, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("BallLog: expected []byte, got %T", src)
	}
	return json.Unmarshal(bytes, l)
}

// Partnership is the current pair's tally since the last wicket.
type Partnership struct {
	Runs  int `json:"runs"`
	Balls int `json:"balls"`
}

func (p Partnership) Value() (driver.Value, error) {
	return json.Marshal(p)
}

func (p *Partnership) Scan(src interface{}) error {
	if src == nil {
		return nil
	}
	bytes, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("Partnership: expected []byte, got %T", src)
	}
	return json.Unmarshal(bytes, p)
}

// Batsmen holds the pair currently at the crease. Either slot may be empty
// (start of innings, or after a wicket cleared the striker).
type Batsmen struct {
	Striker    *PlayerStat `json:"striker"`
	NonStriker *PlayerStat `json:"nonStriker"`
}

func (b Batsmen) Value() (driver.Value, error) {
	return json.Marshal(b)
}

func (b *Batsmen) Scan(src interface{}) error {
	if src == nil {
		return nil
	}
	bytes, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("Batsmen: expected []byte, got %T", src)
	}
	return json.Unmarshal(bytes, b)
}

// Match is the full fixture aggregate: teams, innings tally, ball history and
// the live crease state. All scoring invariants are enforced through the
// processor methods in scoring.go, never by mutating fields directly.
type Match struct {
	gorm.Model
	Team1ID uint      `json:"team1_id" gorm:"index;not null"`
	Team1   team.Team `json:"team1" gorm:"foreignKey:Team1ID"`
	Team2ID uint      `json:"team2_id" gorm:"index;not null"`
	Team2   team.Team `json:"team2" gorm:"foreignKey:Team2ID"`

	Overs int `json:"overs" gorm:"not null"` // innings length in overs

	// Toss outcome. Set exactly once, together with CurrentBattingTeam.
	TossTeamID         *uint       `json:"toss_team_id,omitempty" gorm:"index"`
	CurrentBattingTeam string      `json:"currentBattingTeam"` // "", "team1" or "team2"
	Status             MatchStatus `json:"status" gorm:"index;default:'scheduled'"`

	Score              Score       `json:"score" gorm:"type:jsonb"`
	BallByBall         BallLog     `json:"ballByBall" gorm:"type:jsonb"`
	CurrentPartnership Partnership `json:"currentPartnership" gorm:"type:jsonb"`
	CurrentBatsmen     Batsmen     `json:"currentBatsmen" gorm:"type:jsonb"`
	CurrentBowler      *BowlerStat `json:"currentBowler" gorm:"type:jsonb"`

	ScheduledAt time.Time `json:"scheduled_at" gorm:"index"`
}

// battingScore returns the score record of the side currently batting.
func (m *Match) battingScore() *TeamScore {
	if m.CurrentBattingTeam == TeamOneKey {
		return &m.Score.Team1
	}
	return &m.Score.Team2
}

// scoreForKey returns the score record for an explicit side key (used by undo,
// which trusts the recorded ball's team tag rather than the live state).
func (m *Match) scoreForKey(key string) *TeamScore {
	if key == TeamOneKey {
		return &m.Score.Team1
	}
	return &m.Score.Team2
}

// battingRoster returns the squad of the batting side.
func (m *Match) battingRoster() []team.Player {
	if m.CurrentBattingTeam == TeamOneKey {
		return m.Team1.Players
	}
	return m.Team2.Players
}

// bowlingRoster returns the squad of the fielding side.
func (m *Match) bowlingRoster() []team.Player {
	if m.CurrentBattingTeam == TeamOneKey {
		return m.Team2.Players
	}
	return m.Team1.Players
}

// legalDeliveries counts balls that advance the over (everything except wides
// and no-balls).
func (m *Match) legalDeliveries() int {
	count := 0
	for _, ball := range m.BallByBall {
		if ball.Event != EventWide && ball.Event != EventNoBall {
			count++
		}
	}
	return count
}
