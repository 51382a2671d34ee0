package game

import (
	"errors"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/shipcaptaincrew/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/shipcaptaincrew/internal/common/uuid/mocks"
	diceMocks "github.com/KirkDiggler/shipcaptaincrew/internal/dice/mocks"
	"github.com/KirkDiggler/shipcaptaincrew/internal/models"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EngineTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockDiceRoller *diceMocks.MockRoller
	mockClock      *clockMocks.MockClock
	mockUUID       *uuidMocks.MockUUID

	testTime   time.Time
	testGameID string
}

func (s *EngineTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockDiceRoller = diceMocks.NewMockRoller(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.testGameID = "test-game-id"

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.mockUUID.EXPECT().NewUUID().Return(s.testGameID).AnyTimes()
}

func (s *EngineTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestEngineTestSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

// newEngine builds an engine wired to the suite mocks
func (s *EngineTestSuite) newEngine(players, diceCount, maxRolls int) *service {
	engine, err := New(&Config{
		PlayerCount:   players,
		DiceCount:     diceCount,
		MaxRolls:      maxRolls,
		DiceRoller:    s.mockDiceRoller,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	return engine.(*service)
}

// expectRolls scripts the faces returned by successive six-sided rolls
func (s *EngineTestSuite) expectRolls(values ...int) {
	for _, value := range values {
		s.mockDiceRoller.EXPECT().Roll(6).Return(value)
	}
}

// setDice forces faces onto the dice, holding those flagged
func (s *EngineTestSuite) setDice(engine *service, values []int, held []bool) {
	s.Require().Len(values, len(engine.dice))
	for i, die := range engine.dice {
		die.Value = values[i]
		die.Held = held[i]
	}
}

func (s *EngineTestSuite) setScores(engine *service, scores ...int) {
	s.Require().Len(scores, len(engine.players))
	for i, player := range engine.players {
		player.Score = scores[i]
	}
}

func (s *EngineTestSuite) playerNumbers(players []models.Player) []int {
	numbers := make([]int, 0, len(players))
	for _, player := range players {
		numbers = append(numbers, player.Number)
	}
	return numbers
}

func (s *EngineTestSuite) TestNew_CreatesSequentialPlayers() {
	for count := 2; count <= 8; count++ {
		engine := s.newEngine(count, 5, 3)

		players := engine.Players()
		s.Len(players, count)
		for i, player := range players {
			s.Equal(i+1, player.Number)
			s.Zero(player.Score)
			s.Zero(player.RollsUsed)
		}
		s.Equal(1, engine.CurrentPlayerNumber())
		s.Equal(s.testGameID, engine.ID())
		s.Equal(3, engine.MaxRolls())
	}
}

func (s *EngineTestSuite) TestNew_LabelsDiceInOrder() {
	engine := s.newEngine(2, 5, 3)

	dice := engine.Dice()
	s.Len(dice, 5)
	for i, die := range dice {
		s.Equal(rune('A'+i), die.Label)
		s.Equal(6, die.Sides)
		s.False(die.Held)
		s.GreaterOrEqual(die.Value, 1)
		s.LessOrEqual(die.Value, 6)
	}
}

func (s *EngineTestSuite) TestNew_RejectsFewerThanTwoPlayers() {
	for _, count := range []int{-1, 0, 1} {
		engine, err := New(&Config{
			PlayerCount: count,
			DiceCount:   5,
			MaxRolls:    3,
			DiceRoller:  s.mockDiceRoller,
		})
		s.Nil(engine)
		s.True(errors.Is(err, ErrInvalidConfiguration), "player count %d", count)
	}
}

func (s *EngineTestSuite) TestNew_RejectsInvalidDiceAndRolls() {
	testCases := []struct {
		name string
		cfg  *Config
	}{
		{
			name: "no dice",
			cfg:  &Config{PlayerCount: 2, DiceCount: 0, MaxRolls: 3, DiceRoller: s.mockDiceRoller},
		},
		{
			name: "no rolls",
			cfg:  &Config{PlayerCount: 2, DiceCount: 5, MaxRolls: 0, DiceRoller: s.mockDiceRoller},
		},
		{
			name: "dice without a ship face",
			cfg:  &Config{PlayerCount: 2, DiceCount: 5, MaxRolls: 3, DiceSides: 4, DiceRoller: s.mockDiceRoller},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := New(tc.cfg)
			s.ErrorIs(err, ErrInvalidConfiguration)
		})
	}
}

func (s *EngineTestSuite) TestNew_MissingDependencies() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{PlayerCount: 2, DiceCount: 5, MaxRolls: 3})
	s.ErrorIs(err, ErrNilDiceRoller)
}

func (s *EngineTestSuite) TestRoll_RerollsOnlyUnheldDice() {
	engine := s.newEngine(2, 5, 3)
	s.setDice(engine, []int{6, 2, 2, 2, 2}, []bool{true, false, false, false, false})

	s.expectRolls(3, 4, 5, 1)
	engine.Roll()

	dice := engine.Dice()
	s.Equal(6, dice[0].Value)
	s.True(dice[0].Held)
	s.Equal([]int{3, 4, 5, 1}, []int{dice[1].Value, dice[2].Value, dice[3].Value, dice[4].Value})
	s.Equal(1, engine.CurrentPlayer().RollsUsed)
}

func (s *EngineTestSuite) TestRoll_PastCeilingKeepsCounting() {
	engine := s.newEngine(2, 1, 1)

	s.expectRolls(2, 3)
	engine.Roll()
	s.False(engine.CanCurrentPlayerRoll())
	engine.Roll()

	s.Equal(2, engine.CurrentPlayer().RollsUsed)
	s.Equal(3, engine.Dice()[0].Value)
}

func (s *EngineTestSuite) TestCanCurrentPlayerRoll() {
	engine := s.newEngine(2, 3, 2)
	s.True(engine.CanCurrentPlayerRoll())

	s.expectRolls(1, 1, 1)
	engine.Roll()
	s.True(engine.CanCurrentPlayerRoll())

	engine.HoldDie('A')
	engine.HoldDie('B')
	engine.HoldDie('C')
	s.False(engine.CanCurrentPlayerRoll(), "all dice held")

	engine.ResetDice()
	s.True(engine.CanCurrentPlayerRoll())

	s.expectRolls(2, 2, 2)
	engine.Roll()
	s.False(engine.CanCurrentPlayerRoll(), "rolls exhausted")
}

func (s *EngineTestSuite) TestIsHoldingFace() {
	engine := s.newEngine(2, 3, 3)
	s.setDice(engine, []int{6, 5, 4}, []bool{true, false, false})

	s.True(engine.IsHoldingFace(6))
	s.False(engine.IsHoldingFace(5), "showing but not held")
	s.False(engine.IsHoldingFace(1))
}

func (s *EngineTestSuite) TestAutoHold_AlreadyHeld() {
	engine := s.newEngine(2, 3, 3)
	s.setDice(engine, []int{6, 6, 1}, []bool{true, false, false})

	s.True(engine.AutoHold(6))

	dice := engine.Dice()
	s.False(dice[1].Held, "second six stays free")
}

func (s *EngineTestSuite) TestAutoHold_HoldsFirstUnheldMatch() {
	engine := s.newEngine(2, 5, 3)
	s.setDice(engine, []int{5, 2, 5, 6, 5}, []bool{false, false, false, false, false})

	s.True(engine.AutoHold(5))

	dice := engine.Dice()
	s.True(dice[0].Held)
	s.False(dice[2].Held)
	s.False(dice[4].Held)

	// Already satisfied: nothing more gets held.
	s.True(engine.AutoHold(5))
	s.False(engine.Dice()[2].Held)
}

func (s *EngineTestSuite) TestAutoHold_SkipsHeldDieOfOtherFace() {
	engine := s.newEngine(2, 3, 3)
	s.setDice(engine, []int{4, 4, 6}, []bool{false, false, true})

	s.True(engine.AutoHold(4))

	dice := engine.Dice()
	s.True(dice[0].Held)
	s.False(dice[1].Held)
}

func (s *EngineTestSuite) TestAutoHold_NoMatch() {
	engine := s.newEngine(2, 3, 3)
	s.setDice(engine, []int{1, 2, 3}, []bool{false, true, false})

	s.False(engine.AutoHold(6))

	dice := engine.Dice()
	s.False(dice[0].Held)
	s.True(dice[1].Held)
	s.False(dice[2].Held)
}

func (s *EngineTestSuite) TestHoldDie() {
	engine := s.newEngine(2, 3, 3)

	engine.HoldDie('B')
	engine.HoldDie('B')
	engine.HoldDie('Z')

	dice := engine.Dice()
	s.False(dice[0].Held)
	s.True(dice[1].Held)
	s.False(dice[2].Held)
}

func (s *EngineTestSuite) TestResetDice_KeepsFaces() {
	engine := s.newEngine(2, 3, 3)
	s.setDice(engine, []int{6, 5, 4}, []bool{true, true, true})

	engine.ResetDice()

	for i, die := range engine.Dice() {
		s.False(die.Held)
		s.Equal([]int{6, 5, 4}[i], die.Value)
	}
}

func (s *EngineTestSuite) TestResetPlayers_KeepsTallies() {
	engine := s.newEngine(2, 3, 3)
	engine.players[0].Score = 7
	engine.players[0].RollsUsed = 3
	engine.players[0].Wins = 2
	engine.players[1].Losses = 4

	engine.ResetPlayers()

	players := engine.Players()
	s.Zero(players[0].Score)
	s.Zero(players[0].RollsUsed)
	s.Equal(2, players[0].Wins)
	s.Equal(4, players[1].Losses)
}

func (s *EngineTestSuite) TestScoreCurrentPlayer_Qualifying() {
	engine := s.newEngine(2, 5, 3)
	s.setDice(engine, []int{4, 5, 6, 4, 3}, []bool{true, true, true, false, false})

	s.True(engine.ScoreCurrentPlayer())
	s.Equal(7, engine.CurrentPlayerScore())
}

func (s *EngineTestSuite) TestScoreCurrentPlayer_NotQualifyingKeepsScore() {
	testCases := []struct {
		name   string
		values []int
		held   []bool
	}{
		{
			name:   "trio showing but not held",
			values: []int{4, 5, 6, 6, 6},
			held:   []bool{false, false, false, false, false},
		},
		{
			name:   "crew held alone",
			values: []int{4, 1, 1, 1, 1},
			held:   []bool{true, false, false, false, false},
		},
		{
			name:   "ship and captain without crew",
			values: []int{6, 5, 4, 2, 2},
			held:   []bool{true, true, false, false, false},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			engine := s.newEngine(2, 5, 3)
			engine.players[0].Score = 9
			s.setDice(engine, tc.values, tc.held)

			s.False(engine.ScoreCurrentPlayer())
			s.Equal(9, engine.CurrentPlayerScore())
		})
	}
}

func (s *EngineTestSuite) TestScoreCurrentPlayer_Rescore() {
	engine := s.newEngine(2, 5, 3)
	s.setDice(engine, []int{6, 5, 4, 6, 6}, []bool{true, true, true, false, false})
	s.True(engine.ScoreCurrentPlayer())
	s.Equal(12, engine.CurrentPlayerScore())

	s.setDice(engine, []int{6, 5, 4, 1, 1}, []bool{true, true, true, false, false})
	s.True(engine.ScoreCurrentPlayer())
	s.Equal(2, engine.CurrentPlayerScore())
}

func (s *EngineTestSuite) TestEndTurn() {
	engine := s.newEngine(2, 5, 3)
	engine.players[0].RollsUsed = 1

	engine.EndTurn()

	s.Equal(3, engine.CurrentPlayer().RollsUsed)
	s.False(engine.CanCurrentPlayerRoll())

	engine.EndTurn()
	s.Equal(3, engine.CurrentPlayer().RollsUsed)
}

func (s *EngineTestSuite) TestNextPlayer_FirstEligibleInSeatOrder() {
	engine := s.newEngine(3, 5, 3)
	engine.players[0].RollsUsed = 3
	engine.current = 3

	s.True(engine.NextPlayer())
	s.Equal(2, engine.CurrentPlayerNumber(), "first eligible seat, not the seat after 3")

	engine.players[1].RollsUsed = 3
	s.True(engine.NextPlayer())
	s.Equal(3, engine.CurrentPlayerNumber())
}

func (s *EngineTestSuite) TestNextPlayer_RoundOver() {
	engine := s.newEngine(3, 5, 3)
	engine.current = 2
	for _, player := range engine.players {
		player.RollsUsed = 3
	}

	s.False(engine.NextPlayer())
	s.Equal(2, engine.CurrentPlayerNumber())
}

func (s *EngineTestSuite) TestEndOfRoundResults_TiesAllWin() {
	engine := s.newEngine(4, 5, 3)
	s.setScores(engine, 10, 15, 15, 3)

	result := engine.EndOfRoundResults()

	players := engine.Players()
	s.Equal([]int{0, 1, 1, 0}, []int{players[0].Wins, players[1].Wins, players[2].Wins, players[3].Wins})
	s.Equal([]int{1, 0, 0, 1}, []int{players[0].Losses, players[1].Losses, players[2].Losses, players[3].Losses})

	s.Equal(s.testGameID, result.GameID)
	s.Equal(1, result.Round)
	s.Equal(15, result.HighScore)
	s.Equal(s.testTime, result.CompletedAt)
	s.Equal([]int{2, 3}, result.Winners())

	order := make([]int, 0, len(result.Standings))
	for _, standing := range result.Standings {
		order = append(order, standing.PlayerNumber)
	}
	s.Equal([]int{2, 3, 1, 4}, order)

	// Seat order is untouched by the result view.
	s.Equal([]int{1, 2, 3, 4}, s.playerNumbers(engine.Players()))
}

func (s *EngineTestSuite) TestEndOfRoundResults_SecondCallDoubleCounts() {
	engine := s.newEngine(4, 5, 3)
	s.setScores(engine, 10, 15, 15, 3)

	engine.EndOfRoundResults()
	result := engine.EndOfRoundResults()

	players := engine.Players()
	s.Equal([]int{0, 2, 2, 0}, []int{players[0].Wins, players[1].Wins, players[2].Wins, players[3].Wins})
	s.Equal([]int{2, 0, 0, 2}, []int{players[0].Losses, players[1].Losses, players[2].Losses, players[3].Losses})
	s.Equal(2, result.Round)
	s.Equal(2, engine.RoundsPlayed())
}

func (s *EngineTestSuite) TestStartNewRound() {
	engine := s.newEngine(4, 5, 3)
	s.setScores(engine, 10, 15, 15, 3)
	for _, player := range engine.players {
		player.RollsUsed = 3
	}
	engine.EndOfRoundResults()
	s.setDice(engine, []int{6, 5, 4, 1, 1}, []bool{true, true, true, false, false})

	engine.StartNewRound()

	players := engine.Players()
	s.Equal([]int{4, 1, 2, 3}, s.playerNumbers(players))
	s.Equal(2, engine.CurrentPlayerNumber())
	for _, player := range players {
		s.Zero(player.Score)
		s.Zero(player.RollsUsed)
	}
	s.Equal([]int{0, 0, 1, 1}, []int{players[0].Wins, players[1].Wins, players[2].Wins, players[3].Wins})

	// Dice are reset separately.
	s.True(engine.Dice()[0].Held)
}

func (s *EngineTestSuite) TestFinalStandings() {
	engine := s.newEngine(3, 5, 3)
	engine.players[0].Wins = 1
	engine.players[1].Wins = 3
	engine.players[2].Wins = 3
	engine.rounds = 5

	leaderboard := engine.FinalStandings()

	s.Equal(s.testGameID, leaderboard.GameID)
	s.Equal(5, leaderboard.RoundsPlayed)
	s.Equal([]int{2, 3}, leaderboard.Leaders)
	s.Require().Len(leaderboard.Standings, 3)
	s.Equal(2, leaderboard.Standings[0].PlayerNumber)
	s.Equal(3, leaderboard.Standings[1].PlayerNumber)
	s.Equal(1, leaderboard.Standings[2].PlayerNumber)
	s.False(leaderboard.Standings[2].Won)

	winner := engine.FinalWinner()
	s.Equal(2, winner.Number)
	s.Equal(3, winner.Wins)
}

func (s *EngineTestSuite) TestSnapshotsDoNotLeakState() {
	engine := s.newEngine(2, 3, 3)

	players := engine.Players()
	players[0].Score = 99
	dice := engine.Dice()
	dice[0].Held = true
	current := engine.CurrentPlayer()
	current.Wins = 5

	s.Zero(engine.CurrentPlayerScore())
	s.False(engine.Dice()[0].Held)
	s.Zero(engine.CurrentPlayer().Wins)
}

func (s *EngineTestSuite) TestDiceDisplay() {
	engine := s.newEngine(2, 3, 3)
	s.setDice(engine, []int{6, 2, 4}, []bool{true, false, false})

	s.Equal("A:6* B:2 C:4", engine.DiceDisplay())
}

// TestFullRound plays two players, five dice and three rolls with scripted
// faces in which only player 1 loads the ship.
func (s *EngineTestSuite) TestFullRound() {
	engine := s.newEngine(2, 5, 3)

	// Player 1, roll 1: ship, captain and crew in one throw.
	s.Require().True(engine.CanCurrentPlayerRoll())
	s.expectRolls(6, 5, 4, 3, 2)
	engine.Roll()
	s.True(engine.AutoHold(ShipFace))
	s.True(engine.AutoHold(CaptainFace))
	s.True(engine.AutoHold(CrewFace))
	s.True(engine.ScoreCurrentPlayer())
	s.Equal(5, engine.CurrentPlayerScore())

	// Roll 2: reroll the cargo and keep it.
	s.Require().True(engine.CanCurrentPlayerRoll())
	s.expectRolls(6, 6)
	engine.Roll()
	s.True(engine.ScoreCurrentPlayer())
	s.Equal(12, engine.CurrentPlayerScore())
	engine.HoldDie('D')
	engine.HoldDie('E')
	s.False(engine.CanCurrentPlayerRoll())

	engine.EndTurn()
	engine.ResetDice()
	s.Require().True(engine.NextPlayer())
	s.Equal(2, engine.CurrentPlayerNumber())

	// Player 2 never finds a ship.
	for _, faces := range [][]int{{1, 2, 3, 3, 2}, {1, 1, 1, 1, 1}, {2, 2, 2, 2, 2}} {
		s.Require().True(engine.CanCurrentPlayerRoll())
		s.expectRolls(faces...)
		engine.Roll()
		s.False(engine.AutoHold(ShipFace))
		s.False(engine.ScoreCurrentPlayer())
	}
	s.False(engine.CanCurrentPlayerRoll())
	s.Zero(engine.CurrentPlayerScore())

	engine.EndTurn()
	engine.ResetDice()
	s.False(engine.NextPlayer())

	result := engine.EndOfRoundResults()
	s.Equal([]int{1}, result.Winners())
	s.Equal(12, result.HighScore)
	s.Equal(1, result.Standings[0].PlayerNumber)
	s.Equal(12, result.Standings[0].Score)
	s.Equal(2, result.Standings[1].PlayerNumber)
	s.Zero(result.Standings[1].Score)

	players := engine.Players()
	s.Equal(1, players[0].Wins)
	s.Zero(players[0].Losses)
	s.Zero(players[1].Wins)
	s.Equal(1, players[1].Losses)

	engine.StartNewRound()
	engine.ResetDice()

	s.Equal([]int{2, 1}, s.playerNumbers(engine.Players()))
	s.Equal(1, engine.CurrentPlayerNumber())
	for _, player := range engine.Players() {
		s.Zero(player.Score)
		s.Zero(player.RollsUsed)
	}
	for _, die := range engine.Dice() {
		s.False(die.Held)
	}
	s.True(engine.CanCurrentPlayerRoll())
}
