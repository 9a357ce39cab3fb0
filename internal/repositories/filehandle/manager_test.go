package filehandle_test

import (
	"context"
	"errors"
	"testing"

	"github.com/KirkDiggler/scoretracker/internal/repositories/filehandle"
	"github.com/KirkDiggler/scoretracker/internal/repositories/filehandle/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ManagerTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockPicker   *mocks.MockPicker
	mockHandle   *mocks.MockHandle
	mockWritable *mocks.MockWritable
	manager      *filehandle.Manager
	ctx          context.Context
}

func (s *ManagerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockPicker = mocks.NewMockPicker(s.mockCtrl)
	s.mockHandle = mocks.NewMockHandle(s.mockCtrl)
	s.mockWritable = mocks.NewMockWritable(s.mockCtrl)
	s.ctx = context.Background()

	s.mockHandle.EXPECT().Name().Return("scores.json").AnyTimes()

	manager, err := filehandle.NewManager(&filehandle.Config{Picker: s.mockPicker})
	s.Require().NoError(err)
	s.manager = manager
}

func (s *ManagerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestManagerTestSuite(t *testing.T) {
	suite.Run(t, new(ManagerTestSuite))
}

func (s *ManagerTestSuite) acquire() {
	s.mockPicker.EXPECT().
		AcquireWritableFile(s.ctx, "game-score-tracker.json", filehandle.MimeTypeJSON).
		Return(s.mockHandle, nil)

	name, err := s.manager.Acquire(s.ctx, "game-score-tracker.json")
	s.Require().NoError(err)
	s.Equal("scores.json", name)
}

func (s *ManagerTestSuite) TestAcquire() {
	s.False(s.manager.HasHandle())
	s.Equal("", s.manager.Name())

	s.acquire()

	s.True(s.manager.HasHandle())
	s.Equal("scores.json", s.manager.Name())
}

func (s *ManagerTestSuite) TestAcquire_DeclinedKeepsHandle() {
	s.acquire()

	s.mockPicker.EXPECT().
		AcquireWritableFile(s.ctx, "other.json", filehandle.MimeTypeJSON).
		Return(nil, filehandle.ErrDeclined)

	_, err := s.manager.Acquire(s.ctx, "other.json")
	s.ErrorIs(err, filehandle.ErrDeclined)
	s.True(s.manager.HasHandle())
}

func (s *ManagerTestSuite) TestWrite_NoHandle() {
	err := s.manager.Write(s.ctx, []byte("{}"))
	s.ErrorIs(err, filehandle.ErrNoHandle)
}

func (s *ManagerTestSuite) TestWrite_Granted() {
	s.acquire()

	gomock.InOrder(
		s.mockHandle.EXPECT().QueryPermission(s.ctx).Return(filehandle.PermissionGranted, nil),
		s.mockHandle.EXPECT().CreateWritable(s.ctx).Return(s.mockWritable, nil),
		s.mockWritable.EXPECT().Write(s.ctx, []byte(`{"players":[]}`)).Return(nil),
		s.mockWritable.EXPECT().Close(s.ctx).Return(nil),
	)

	s.NoError(s.manager.Write(s.ctx, []byte(`{"players":[]}`)))
}

func (s *ManagerTestSuite) TestWrite_PromptThenGranted() {
	s.acquire()

	gomock.InOrder(
		s.mockHandle.EXPECT().QueryPermission(s.ctx).Return(filehandle.PermissionPrompt, nil),
		s.mockHandle.EXPECT().RequestPermission(s.ctx).Return(filehandle.PermissionGranted, nil),
		s.mockHandle.EXPECT().CreateWritable(s.ctx).Return(s.mockWritable, nil),
		s.mockWritable.EXPECT().Write(s.ctx, gomock.Any()).Return(nil),
		s.mockWritable.EXPECT().Close(s.ctx).Return(nil),
	)

	s.NoError(s.manager.Write(s.ctx, []byte("{}")))
	s.True(s.manager.HasHandle())
}

func (s *ManagerTestSuite) TestWrite_PromptRefusedDropsHandle() {
	s.acquire()

	s.mockHandle.EXPECT().QueryPermission(s.ctx).Return(filehandle.PermissionPrompt, nil)
	s.mockHandle.EXPECT().RequestPermission(s.ctx).Return(filehandle.PermissionDenied, nil)

	err := s.manager.Write(s.ctx, []byte("{}"))
	s.ErrorIs(err, filehandle.ErrPermissionDenied)
	s.False(s.manager.HasHandle())

	// later writes fail fast until a new file is chosen
	s.ErrorIs(s.manager.Write(s.ctx, []byte("{}")), filehandle.ErrNoHandle)
}

func (s *ManagerTestSuite) TestWrite_DeniedWithoutAsking() {
	s.acquire()

	s.mockHandle.EXPECT().QueryPermission(s.ctx).Return(filehandle.PermissionDenied, nil)

	err := s.manager.Write(s.ctx, []byte("{}"))
	s.ErrorIs(err, filehandle.ErrPermissionDenied)
	s.False(s.manager.HasHandle())
}

func (s *ManagerTestSuite) TestWrite_FailureAbortsStream() {
	s.acquire()
	writeErr := errors.New("disk on fire")

	gomock.InOrder(
		s.mockHandle.EXPECT().QueryPermission(s.ctx).Return(filehandle.PermissionGranted, nil),
		s.mockHandle.EXPECT().CreateWritable(s.ctx).Return(s.mockWritable, nil),
		s.mockWritable.EXPECT().Write(s.ctx, gomock.Any()).Return(writeErr),
		s.mockWritable.EXPECT().Abort(s.ctx).Return(nil),
	)

	err := s.manager.Write(s.ctx, []byte("{}"))
	s.ErrorIs(err, writeErr)
	s.True(s.manager.HasHandle())
}

func (s *ManagerTestSuite) TestWrite_CloseFailure() {
	s.acquire()
	closeErr := errors.New("rename failed")

	gomock.InOrder(
		s.mockHandle.EXPECT().QueryPermission(s.ctx).Return(filehandle.PermissionGranted, nil),
		s.mockHandle.EXPECT().CreateWritable(s.ctx).Return(s.mockWritable, nil),
		s.mockWritable.EXPECT().Write(s.ctx, gomock.Any()).Return(nil),
		s.mockWritable.EXPECT().Close(s.ctx).Return(closeErr),
	)

	s.ErrorIs(s.manager.Write(s.ctx, []byte("{}")), closeErr)
}

func (s *ManagerTestSuite) TestRelease() {
	s.acquire()
	s.manager.Release()
	s.False(s.manager.HasHandle())
}

func (s *ManagerTestSuite) TestRead() {
	s.mockPicker.EXPECT().OpenFileForRead(s.ctx, filehandle.MimeTypeJSON).Return([]byte("{}"), nil)

	data, err := s.manager.Read(s.ctx)
	s.Require().NoError(err)
	s.Equal([]byte("{}"), data)
}

func (s *ManagerTestSuite) TestNewManager_Validation() {
	_, err := filehandle.NewManager(nil)
	s.Error(err)

	_, err = filehandle.NewManager(&filehandle.Config{})
	s.Error(err)
}
