package match

import (
	"errors"
	"fmt"
	"strings"

	"github.com/RonakJoshi-17/crickboard/internal/team"
)

// Scoring state errors. The controller maps these onto HTTP statuses; the
// processors themselves only know about match state.
var (
	ErrPlayersNotSet      = errors.New("striker, non-striker and bowler must be set before recording a ball")
	ErrInvalidEvent       = errors.New("invalid ball event")
	ErrMissingWicketType  = errors.New("wicket type is required for a wicket event")
	ErrInvalidWicketType  = errors.New("unrecognized wicket type")
	ErrNothingToUndo      = errors.New("no balls recorded yet")
	ErrBattingTeamDecided = errors.New("batting team has already been decided")
	ErrBattingTeamNotSet  = errors.New("batting team has not been decided yet")
	ErrInvalidBattingTeam = errors.New("batting team must be team1 or team2")
	ErrNoPlayersGiven     = errors.New("at least one of striker, non-striker or bowler must be provided")
	ErrEmptyPlayerName    = errors.New("player name cannot be empty")
	ErrNegativeRuns       = errors.New("runs cannot be negative")
	ErrPlayerNotInSquad   = errors.New("player not found in squad")
	ErrStrikerNotSet      = errors.New("striker must be set before the non-striker")
	ErrDuplicateBatsman   = errors.New("non-striker must be a different player than the striker")
)

// DeliveryInput is one ball as submitted by the scoring panel. Batsman and
// Bowler override the names recorded on the ball event; the installed crease
// players are used when they are blank.
type DeliveryInput struct {
	Event          string     `json:"event" binding:"required"`
	Batsman        string     `json:"batsman,omitempty"`
	Bowler         string     `json:"bowler,omitempty"`
	WicketType     WicketType `json:"wicketType,omitempty"`
	RunsOnWicket   int        `json:"runsOnWicket" binding:"min=0"`
	AdditionalRuns int        `json:"additionalRuns" binding:"min=0"`
}

// PlayerSelection assigns players to the crease and the bowling end. Any
// subset of the three slots may be provided.
type PlayerSelection struct {
	Striker    string `json:"striker"`
	NonStriker string `json:"nonStriker"`
	Bowler     string `json:"bowler"`
}

// DecideBattingTeam records the toss outcome. It can happen only once per
// match and moves the fixture into the in-progress state.
func (m *Match) DecideBattingTeam(side string) error {
	if m.CurrentBattingTeam != "" {
		return ErrBattingTeamDecided
	}
	if side != TeamOneKey && side != TeamTwoKey {
		return ErrInvalidBattingTeam
	}
	m.CurrentBattingTeam = side
	if side == TeamOneKey {
		m.TossTeamID = &m.Team1ID
	} else {
		m.TossTeamID = &m.Team2ID
	}
	m.Status = StatusInProgress
	return nil
}

// ApplyPlayerSelection installs the requested players. Batsmen are matched
// against the batting squad and the bowler against the fielding squad, case
// insensitively. Every installed player starts from zero-valued figures; the
// roster copies are left untouched.
func (m *Match) ApplyPlayerSelection(sel PlayerSelection) error {
	striker := strings.TrimSpace(sel.Striker)
	nonStriker := strings.TrimSpace(sel.NonStriker)
	bowler := strings.TrimSpace(sel.Bowler)

	if sel.Striker == "" && sel.NonStriker == "" && sel.Bowler == "" {
		return ErrNoPlayersGiven
	}
	// A slot that was sent but holds only whitespace is a mistake, not an
	// omission.
	if (sel.Striker != "" && striker == "") ||
		(sel.NonStriker != "" && nonStriker == "") ||
		(sel.Bowler != "" && bowler == "") {
		return ErrEmptyPlayerName
	}
	if m.CurrentBattingTeam == "" {
		return ErrBattingTeamNotSet
	}

	// Resolve every slot before touching the crease so a bad name leaves the
	// match untouched.
	var strikerName, nonStrikerName, bowlerName string
	if striker != "" {
		name, ok := findInSquad(m.battingRoster(), striker)
		if !ok {
			return fmt.Errorf("%w: batsman %q", ErrPlayerNotInSquad, striker)
		}
		strikerName = name
		// The live non-striker keeps the other end unless the same request
		// replaces it, so the new striker must be a different player.
		if nonStriker == "" && m.CurrentBatsmen.NonStriker != nil && !m.CurrentBatsmen.NonStriker.Out &&
			strings.EqualFold(strikerName, m.CurrentBatsmen.NonStriker.Name) {
			return ErrDuplicateBatsman
		}
	}
	if nonStriker != "" {
		effective := strikerName
		if effective == "" && m.CurrentBatsmen.Striker != nil {
			effective = m.CurrentBatsmen.Striker.Name
		}
		if effective == "" {
			return ErrStrikerNotSet
		}
		if strings.EqualFold(nonStriker, effective) {
			return ErrDuplicateBatsman
		}
		name, ok := findInSquad(m.battingRoster(), nonStriker)
		if !ok {
			return fmt.Errorf("%w: batsman %q", ErrPlayerNotInSquad, nonStriker)
		}
		nonStrikerName = name
	}
	if bowler != "" {
		name, ok := findInSquad(m.bowlingRoster(), bowler)
		if !ok {
			return fmt.Errorf("%w: bowler %q", ErrPlayerNotInSquad, bowler)
		}
		bowlerName = name
	}

	if strikerName != "" {
		m.CurrentBatsmen.Striker = &PlayerStat{Name: strikerName}
		if m.CurrentBatsmen.NonStriker != nil && m.CurrentBatsmen.NonStriker.Out {
			m.CurrentBatsmen.NonStriker = nil
		}
	}
	if nonStrikerName != "" {
		m.CurrentBatsmen.NonStriker = &PlayerStat{Name: nonStrikerName}
	}
	if bowlerName != "" {
		m.CurrentBowler = &BowlerStat{Name: bowlerName}
	}
	return nil
}

// findInSquad locates a player case-insensitively and returns the canonical
// roster spelling.
func findInSquad(squad []team.Player, name string) (string, bool) {
	for _, p := range squad {
		if strings.EqualFold(p.Name, name) {
			return p.Name, true
		}
	}
	return "", false
}

// ApplyDelivery records one ball against the batting side. All validation
// happens before the first mutation, so a rejected ball leaves the aggregate
// exactly as it was. If the ball completes the innings the match is marked
// completed and the ball itself is not appended to the history.
func (m *Match) ApplyDelivery(in DeliveryInput) error {
	if m.CurrentBattingTeam == "" {
		return ErrBattingTeamNotSet
	}
	if m.CurrentBatsmen.Striker == nil || m.CurrentBatsmen.NonStriker == nil || m.CurrentBowler == nil {
		return ErrPlayersNotSet
	}
	runs, isRun := RunEvents[in.Event]
	if !isRun && in.Event != EventWide && in.Event != EventNoBall && in.Event != EventWicket {
		return fmt.Errorf("%w: %q", ErrInvalidEvent, in.Event)
	}
	if in.AdditionalRuns < 0 || in.RunsOnWicket < 0 {
		return ErrNegativeRuns
	}
	if in.Event == EventWicket {
		if in.WicketType == "" {
			return ErrMissingWicketType
		}
		if !ValidWicketTypes[in.WicketType] {
			return fmt.Errorf("%w: %q", ErrInvalidWicketType, in.WicketType)
		}
	}

	score := m.battingScore()
	striker := m.CurrentBatsmen.Striker
	bowler := m.CurrentBowler
	legalBefore := m.legalDeliveries()

	ball := BallEvent{
		Event:   in.Event,
		Team:    m.CurrentBattingTeam,
		Batsman: striker.Name,
		Bowler:  bowler.Name,
	}
	if name := strings.TrimSpace(in.Batsman); name != "" {
		ball.Batsman = name
	}
	if name := strings.TrimSpace(in.Bowler); name != "" {
		ball.Bowler = name
	}
	ball.Over, ball.Ball, ball.OverString = overLabel(legalBefore)

	legal := false
	switch {
	case isRun:
		legal = true
		score.Runs += runs
		m.CurrentPartnership.Runs += runs
		m.CurrentPartnership.Balls++
		striker.Runs += runs
		striker.Balls++
		switch runs {
		case 4:
			striker.Fours++
		case 6:
			striker.Sixes++
		}
		bowler.Overs += 1.0 / 6
		bowler.Runs += runs
		if runs%2 == 1 {
			m.swapStrike()
		}

	case in.Event == EventWide, in.Event == EventNoBall:
		total := 1 + in.AdditionalRuns
		score.Runs += total
		bowler.Runs += total
		ball.ExtraRuns = 1
		ball.AdditionalRuns = in.AdditionalRuns
		if in.AdditionalRuns > 0 {
			// On a no-ball the batsman faced the delivery; on a wide only a
			// boundary off the bat counts against him.
			if in.Event == EventNoBall || in.AdditionalRuns == 4 || in.AdditionalRuns == 6 {
				striker.Balls++
			}
			switch in.AdditionalRuns {
			case 4:
				striker.Fours++
			case 6:
				striker.Sixes++
			}
			if in.AdditionalRuns%2 == 1 {
				m.swapStrike()
			}
		}

	case in.Event == EventWicket:
		legal = true
		score.Wickets++
		m.CurrentPartnership = Partnership{}
		striker.Out = true
		striker.Balls++
		bowler.Overs += 1.0 / 6
		bowler.Wickets++
		bowler.Runs += in.RunsOnWicket
		if in.WicketType == WicketRunOut {
			score.Runs += in.RunsOnWicket
			striker.Runs += in.RunsOnWicket
		}
		ball.WicketType = in.WicketType
		ball.RunsOnWicket = in.RunsOnWicket
		// The new batsman has to be assigned before the next ball.
		m.CurrentBatsmen.Striker = nil
	}

	legalAfter := legalBefore
	if legal {
		legalAfter++
		score.Overs = oversValue(legalAfter)
	}

	if legalAfter > 0 && legalAfter%6 == 0 && legal {
		m.CurrentBowler = nil
		m.swapStrike()
	}

	squad := len(m.battingRoster())
	if legalAfter >= m.Overs*6 || (squad > 0 && score.Wickets >= squad) {
		m.Status = StatusCompleted
		return nil
	}

	m.BallByBall = append(m.BallByBall, ball)
	return nil
}

// UndoLastDelivery pops the most recent ball and applies the arithmetic
// inverse of the branch that recorded it. Crease state that the ball erased
// (a dismissed striker, a finished bowler) is restored best effort: figures
// are rolled back where the player is still installed, and skipped otherwise.
func (m *Match) UndoLastDelivery() (*BallEvent, error) {
	if len(m.BallByBall) == 0 {
		return nil, ErrNothingToUndo
	}
	last := m.BallByBall[len(m.BallByBall)-1]
	m.BallByBall = m.BallByBall[:len(m.BallByBall)-1]

	score := m.scoreForKey(last.Team)
	striker := m.CurrentBatsmen.Striker
	bowler := m.bowlerForUndo(last.Bowler)

	switch {
	case RunEvents[last.Event] > 0:
		runs := RunEvents[last.Event]
		score.Runs -= runs
		m.CurrentPartnership.Runs -= runs
		m.CurrentPartnership.Balls--
		if striker != nil {
			striker.Runs -= runs
			striker.Balls--
			switch runs {
			case 4:
				striker.Fours--
			case 6:
				striker.Sixes--
			}
		}
		bowler.Overs -= 1.0 / 6
		bowler.Runs -= runs

	case last.Event == EventWide, last.Event == EventNoBall:
		total := 1 + last.AdditionalRuns
		score.Runs -= total
		bowler.Runs -= total
		if last.AdditionalRuns > 0 && striker != nil {
			if last.Event == EventNoBall || last.AdditionalRuns == 4 || last.AdditionalRuns == 6 {
				striker.Balls--
			}
			switch last.AdditionalRuns {
			case 4:
				striker.Fours--
			case 6:
				striker.Sixes--
			}
		}

	case last.Event == EventWicket:
		score.Wickets--
		m.CurrentPartnership = Partnership{}
		if striker != nil {
			striker.Out = false
			striker.Balls--
			if last.WicketType == WicketRunOut {
				striker.Runs -= last.RunsOnWicket
			}
		}
		if last.WicketType == WicketRunOut {
			score.Runs -= last.RunsOnWicket
		}
		bowler.Overs -= 1.0 / 6
		bowler.Wickets--
		bowler.Runs -= last.RunsOnWicket
	}

	legal := m.legalDeliveries()
	score.Overs = oversValue(legal)
	if legal > 0 && legal%6 == 0 {
		m.CurrentBowler = nil
	}
	if len(m.BallByBall) == 0 {
		score.Overs = 0
	}
	if m.Status == StatusCompleted {
		m.Status = StatusInProgress
	}
	return &last, nil
}

// bowlerForUndo returns the live bowler record when it still matches the
// recorded ball, or a throwaway record so the inverse arithmetic is a no-op.
func (m *Match) bowlerForUndo(name string) *BowlerStat {
	if m.CurrentBowler != nil && strings.EqualFold(m.CurrentBowler.Name, name) {
		return m.CurrentBowler
	}
	return &BowlerStat{Name: name}
}

// ResetScorecard wipes the innings back to a fresh scorecard while keeping
// the fixture itself, the toss outcome and the batting-team decision.
func (m *Match) ResetScorecard() {
	m.Status = StatusScheduled
	m.Score.Team1 = freshTeamScore(m.Team1.Players)
	m.Score.Team2 = freshTeamScore(m.Team2.Players)
	m.BallByBall = BallLog{}
	m.CurrentPartnership = Partnership{}
	m.CurrentBatsmen = Batsmen{}
	m.CurrentBowler = nil
}

func freshTeamScore(squad []team.Player) TeamScore {
	players := make([]PlayerStat, 0, len(squad))
	for _, p := range squad {
		players = append(players, PlayerStat{Name: p.Name})
	}
	return TeamScore{Players: players}
}

func (m *Match) swapStrike() {
	m.CurrentBatsmen.Striker, m.CurrentBatsmen.NonStriker = m.CurrentBatsmen.NonStriker, m.CurrentBatsmen.Striker
}

// overLabel derives the scoreboard label for the next ball from the number of
// legal deliveries bowled so far. The first ball of an over is labelled x.1
// except for the very first ball of the innings, which reads 1.0.
func overLabel(legalSoFar int) (over, ball int, label string) {
	if legalSoFar == 0 {
		return 1, 0, "1.0"
	}
	over = legalSoFar/6 + 1
	ball = legalSoFar % 6
	if ball == 0 {
		ball = 1
	}
	return over, ball, fmt.Sprintf("%d.%d", over, ball)
}

// oversValue converts a legal-delivery count into the fractional overs figure
// without accumulating floating-point drift.
func oversValue(legal int) float64 {
	return float64(legal) / 6
}
