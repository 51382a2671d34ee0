package game

import (
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/KirkDiggler/shipcaptaincrew/internal/common/clock"
	"github.com/KirkDiggler/shipcaptaincrew/internal/common/uuid"
	"github.com/KirkDiggler/shipcaptaincrew/internal/dice"
	"github.com/KirkDiggler/shipcaptaincrew/internal/models"
)

// service implements the Engine interface
type service struct {
	id       string
	players  []*models.Player
	dice     []*models.Die
	maxRolls int

	// current is the seat number of the current player, not an index:
	// StartNewRound reorders players.
	current int
	rounds  int

	diceRoller    dice.Roller
	clock         clock.Clock
	uuidGenerator uuid.UUID
	logger        *slog.Logger
}

// New creates a game engine with its players and dice
func New(cfg *Config) (Engine, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.PlayerCount < MinPlayers {
		return nil, fmt.Errorf("%w: need at least %d players, got %d", ErrInvalidConfiguration, MinPlayers, cfg.PlayerCount)
	}

	if cfg.DiceCount < 1 {
		return nil, fmt.Errorf("%w: need at least one die, got %d", ErrInvalidConfiguration, cfg.DiceCount)
	}

	if cfg.MaxRolls < 1 {
		return nil, fmt.Errorf("%w: need at least one roll per round, got %d", ErrInvalidConfiguration, cfg.MaxRolls)
	}

	sides := cfg.DiceSides
	if sides == 0 {
		sides = DefaultDiceSides
	}
	if sides < ShipFace {
		return nil, fmt.Errorf("%w: dice need at least %d sides, got %d", ErrInvalidConfiguration, ShipFace, sides)
	}

	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	uuidGenerator := cfg.UUIDGenerator
	if uuidGenerator == nil {
		uuidGenerator = uuid.New()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	players := make([]*models.Player, 0, cfg.PlayerCount)
	for i := 1; i <= cfg.PlayerCount; i++ {
		players = append(players, models.NewPlayer(i))
	}

	diceSet := make([]*models.Die, 0, cfg.DiceCount)
	for i := 0; i < cfg.DiceCount; i++ {
		diceSet = append(diceSet, models.NewDie(rune('A'+i), sides))
	}

	return &service{
		id:            uuidGenerator.NewUUID(),
		players:       players,
		dice:          diceSet,
		maxRolls:      cfg.MaxRolls,
		current:       players[0].Number,
		diceRoller:    cfg.DiceRoller,
		clock:         clk,
		uuidGenerator: uuidGenerator,
		logger:        logger,
	}, nil
}

func (s *service) ID() string {
	return s.id
}

func (s *service) MaxRolls() int {
	return s.maxRolls
}

func (s *service) RoundsPlayed() int {
	return s.rounds
}

// currentPlayer resolves the current seat number to the stored player
func (s *service) currentPlayer() *models.Player {
	for _, player := range s.players {
		if player.Number == s.current {
			return player
		}
	}
	// current is only ever assigned from a stored player
	panic(fmt.Sprintf("game: current player %d is not seated", s.current))
}

func (s *service) allDiceHeld() bool {
	for _, die := range s.dice {
		if !die.Held {
			return false
		}
	}
	return true
}

// CanCurrentPlayerRoll reports whether the current player may roll again
func (s *service) CanCurrentPlayerRoll() bool {
	return s.currentPlayer().RollsUsed < s.maxRolls && !s.allDiceHeld()
}

// Roll does not check the roll ceiling; callers ask CanCurrentPlayerRoll first.
func (s *service) Roll() {
	s.currentPlayer().Roll()
	for _, die := range s.dice {
		die.Roll(s.diceRoller)
	}
}

func (s *service) IsHoldingFace(face int) bool {
	for _, die := range s.dice {
		if die.Held && die.Shows(face) {
			return true
		}
	}
	return false
}

// AutoHold holds at most one die per call, the first unheld one showing face
func (s *service) AutoHold(face int) bool {
	if s.IsHoldingFace(face) {
		return true
	}

	for _, die := range s.dice {
		if !die.Held && die.Shows(face) {
			die.Hold()
			return true
		}
	}
	return false
}

func (s *service) HoldDie(label rune) {
	for _, die := range s.dice {
		if die.Label == label {
			die.Hold()
			return
		}
	}
}

func (s *service) ResetDice() {
	for _, die := range s.dice {
		die.Reset()
	}
}

func (s *service) ResetPlayers() {
	for _, player := range s.players {
		player.ResetRound()
	}
}

// ScoreCurrentPlayer sets the score to the total of every die less
// QualifyingOffset when held dice show ship, captain and crew. A hand that
// does not qualify leaves the previous score in place.
func (s *service) ScoreCurrentPlayer() bool {
	var crew, captain, ship bool
	total := 0

	for _, die := range s.dice {
		total += die.Value
		if !die.Held {
			continue
		}
		switch die.Value {
		case CrewFace:
			crew = true
		case CaptainFace:
			captain = true
		case ShipFace:
			ship = true
		}
	}

	if !(crew && captain && ship) {
		return false
	}

	s.currentPlayer().Score = total - QualifyingOffset
	return true
}

func (s *service) EndTurn() {
	player := s.currentPlayer()
	for player.RollsUsed < s.maxRolls {
		player.Roll()
	}
}

// NextPlayer always picks the first eligible seat in stored order, not the
// seat after the current one.
func (s *service) NextPlayer() bool {
	for _, player := range s.players {
		if player.RollsUsed < s.maxRolls {
			s.current = player.Number
			return true
		}
	}
	return false
}

func (s *service) highScore() int {
	high := s.players[0].Score
	for _, player := range s.players[1:] {
		if player.Score > high {
			high = player.Score
		}
	}
	return high
}

// EndOfRoundResults is not idempotent: every call credits another win or loss
// to each player.
func (s *service) EndOfRoundResults() *models.RoundResult {
	high := s.highScore()

	for _, player := range s.players {
		if player.Score == high {
			player.AddWin()
		} else {
			player.AddLoss()
		}
	}

	ordered := make([]*models.Player, len(s.players))
	copy(ordered, s.players)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Score > ordered[j].Score
	})

	standings := make([]*models.PlayerStanding, 0, len(ordered))
	for _, player := range ordered {
		standings = append(standings, &models.PlayerStanding{
			PlayerNumber: player.Number,
			Score:        player.Score,
			Won:          player.Score == high,
			Wins:         player.Wins,
			Losses:       player.Losses,
		})
	}

	s.rounds++

	result := &models.RoundResult{
		ID:          s.uuidGenerator.NewUUID(),
		GameID:      s.id,
		Round:       s.rounds,
		HighScore:   high,
		Standings:   standings,
		CompletedAt: s.clock.Now(),
	}

	s.logger.Debug("round aggregated",
		"game_id", s.id,
		"round", result.Round,
		"high_score", high,
		"winners", result.Winners())

	return result
}

func (s *service) FinalStandings() *models.Leaderboard {
	ordered := make([]*models.Player, len(s.players))
	copy(ordered, s.players)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Wins > ordered[j].Wins
	})

	mostWins := ordered[0].Wins

	leaderboard := &models.Leaderboard{
		GameID:       s.id,
		RoundsPlayed: s.rounds,
		Standings:    make([]*models.PlayerStanding, 0, len(ordered)),
	}

	for _, player := range ordered {
		leaderboard.Standings = append(leaderboard.Standings, &models.PlayerStanding{
			PlayerNumber: player.Number,
			Score:        player.Score,
			Won:          player.Wins == mostWins,
			Wins:         player.Wins,
			Losses:       player.Losses,
		})
	}

	for _, player := range s.players {
		if player.Wins == mostWins {
			leaderboard.Leaders = append(leaderboard.Leaders, player.Number)
		}
	}

	return leaderboard
}

func (s *service) FinalWinner() models.Player {
	winner := s.players[0]
	for _, player := range s.players[1:] {
		if player.Wins > winner.Wins {
			winner = player
		}
	}
	return *winner
}

// StartNewRound leaves the dice alone; callers reset them separately.
func (s *service) StartNewRound() {
	sort.SliceStable(s.players, func(i, j int) bool {
		return s.players[i].Score < s.players[j].Score
	})

	leader := s.players[0]
	for _, player := range s.players[1:] {
		if player.Score > leader.Score {
			leader = player
		}
	}
	s.current = leader.Number

	s.logger.Debug("new round",
		"game_id", s.id,
		"first_player", leader.Number,
		"previous_score", leader.Score)

	s.ResetPlayers()
}

func (s *service) CurrentPlayer() models.Player {
	return *s.currentPlayer()
}

func (s *service) CurrentPlayerNumber() int {
	return s.current
}

func (s *service) CurrentPlayerScore() int {
	return s.currentPlayer().Score
}

func (s *service) Players() []models.Player {
	players := make([]models.Player, 0, len(s.players))
	for _, player := range s.players {
		players = append(players, *player)
	}
	return players
}

func (s *service) Dice() []models.Die {
	snapshot := make([]models.Die, 0, len(s.dice))
	for _, die := range s.dice {
		snapshot = append(snapshot, *die)
	}
	return snapshot
}

func (s *service) DiceDisplay() string {
	return FormatDice(s.Dice())
}
