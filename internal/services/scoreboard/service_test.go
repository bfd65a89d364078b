package scoreboard

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/minesweeper-go/internal/model"
	"github.com/mcoot/minesweeper-go/internal/storage/memory"
	"github.com/mcoot/minesweeper-go/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.service = New(s.storage, testutil.NopLogger())
	s.ctx = context.Background()
}

// answers returns an IdentifyFunc replaying ids, counting calls
func answers(calls *int, ids ...string) IdentifyFunc {
	return func(ctx context.Context) (string, error) {
		*calls++
		if *calls > len(ids) {
			return "", errors.New("no more answers")
		}
		return ids[*calls-1], nil
	}
}

func (s *ServiceSuite) fill(scores ...int) {
	for i, score := range scores {
		calls := 0
		_, ok, err := s.service.Record(s.ctx, score, answers(&calls, fmt.Sprintf("A%02d", i)))
		s.Require().NoError(err)
		s.Require().True(ok)
	}
}

// Load tests

func (s *ServiceSuite) TestLoadMissingBoardIsEmpty() {
	board, err := s.service.Load(s.ctx)
	s.Require().NoError(err)
	s.Empty(board.Entries)
}

func (s *ServiceSuite) TestLoadCorruptBoard() {
	s.Require().NoError(s.storage.SaveScores(s.ctx, []byte("entries: {")))

	_, err := s.service.Load(s.ctx)
	s.ErrorIs(err, model.ErrCorruptState)
}

// Record tests

func (s *ServiceSuite) TestRecordPersistsSortedBoard() {
	s.fill(50, 10, 30)

	board, err := s.service.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"A01 : 10", "A02 : 30", "A00 : 50"}, board.Lines())
}

func (s *ServiceSuite) TestRecordUpcasesIdentifier() {
	calls := 0
	board, ok, err := s.service.Record(s.ctx, 12, answers(&calls, "abc"))
	s.Require().NoError(err)
	s.True(ok)
	s.Equal("ABC", board.Entries[0].Identifier)
}

func (s *ServiceSuite) TestNonQualifyingScoreDoesNotAsk() {
	s.fill(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)

	calls := 0
	board, ok, err := s.service.Record(s.ctx, 11, answers(&calls, "ZZZ"))
	s.Require().NoError(err)
	s.False(ok)
	s.Equal(0, calls)
	s.Len(board.Entries, model.ScoreBoardCapacity)
	s.Equal(10, board.Entries[9].Score)
}

func (s *ServiceSuite) TestInvalidIdentifierIsAskedAgain() {
	calls := 0
	board, ok, err := s.service.Record(s.ctx, 7, answers(&calls, "toolong", "x", "bob"))
	s.Require().NoError(err)
	s.True(ok)
	s.Equal(3, calls)
	s.Equal("BOB", board.Entries[0].Identifier)
}

func (s *ServiceSuite) TestRecordLogsAttempts() {
	logger, buf := testutil.CaptureLogger()
	service := New(s.storage, logger)

	calls := 0
	_, ok, err := service.Record(s.ctx, 9, answers(&calls, "no", "yes"))
	s.Require().NoError(err)
	s.True(ok)

	logs := buf.String()
	s.Contains(logs, `"msg":"rejected identifier"`)
	s.Contains(logs, `"attempt":1`)
	s.Contains(logs, `"msg":"score recorded"`)
	s.Contains(logs, `"score":9`)
}

func (s *ServiceSuite) TestGivesUpAfterMaxAttempts() {
	calls := 0
	_, ok, err := s.service.Record(s.ctx, 7, answers(&calls, "a", "b", "c", "ddd"))
	s.ErrorIs(err, model.ErrInvalidIdentifier)
	s.False(ok)
	s.Equal(MaxIdentifierAttempts, calls)

	board, _ := s.service.Load(s.ctx)
	s.Empty(board.Entries)
}

func (s *ServiceSuite) TestIdentifyErrorIsReturned() {
	boom := errors.New("input closed")
	_, ok, err := s.service.Record(s.ctx, 7, func(ctx context.Context) (string, error) {
		return "", boom
	})
	s.ErrorIs(err, boom)
	s.False(ok)
}

func (s *ServiceSuite) TestNegativeScoreRejected() {
	calls := 0
	_, _, err := s.service.Record(s.ctx, -1, answers(&calls, "AAA"))
	s.ErrorIs(err, model.ErrInvalidConfiguration)
}

// Reset tests

func (s *ServiceSuite) TestReset() {
	s.fill(5)

	s.Require().NoError(s.service.Reset(s.ctx))

	board, err := s.service.Load(s.ctx)
	s.Require().NoError(err)
	s.Empty(board.Entries)
}
