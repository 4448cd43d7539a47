package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/keep-objectives/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "game not registered",
			expected: "NOT_FOUND: game not registered",
		},
		{
			name:     "out of range error",
			code:     errors.CodeOutOfRange,
			message:  "not enough tracks",
			expected: "OUT_OF_RANGE: not enough tracks",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.OutOfRangef("insufficient candidates").
		WithMeta("token", "TRACK").
		WithMeta("required", 2)

	s.Assert().Equal("TRACK", err.Meta["token"])
	s.Assert().Equal(2, err.Meta["required"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(baseErr, "failed to load profile")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to load profile", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndMeta() {
	baseErr := errors.NotFound("profile not found").WithMeta("profile_id", "p1")
	wrapped := errors.Wrapf(baseErr, "profile %s", "p1")

	s.Assert().Equal(errors.CodeNotFound, wrapped.Code)
	s.Assert().Equal("profile p1", wrapped.Message)
	s.Assert().Equal("p1", wrapped.Meta["profile_id"])
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := errors.Internal("boom").WithMeta("k", "v")
	wrapped := errors.WrapWithCode(baseErr, errors.CodeUnavailable, "store unavailable")

	s.Assert().Equal(errors.CodeUnavailable, wrapped.Code)
	s.Assert().Equal("v", wrapped.Meta["k"])
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "should be nil"))
	s.Assert().Nil(errors.Wrapf(nil, "should be %s", "nil"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestConstructorFunctions() {
	testCases := []struct {
		name        string
		constructor func() *errors.Error
		code        errors.Code
	}{
		{"NotFound", func() *errors.Error { return errors.NotFound("test") }, errors.CodeNotFound},
		{"InvalidArgument", func() *errors.Error { return errors.InvalidArgument("test") }, errors.CodeInvalidArgument},
		{"FailedPrecondition", func() *errors.Error { return errors.FailedPrecondition("test") }, errors.CodeFailedPrecondition},
		{"OutOfRangef", func() *errors.Error { return errors.OutOfRangef("test") }, errors.CodeOutOfRange},
		{"AlreadyExistsf", func() *errors.Error { return errors.AlreadyExistsf("test") }, errors.CodeAlreadyExists},
		{"Internal", func() *errors.Error { return errors.Internal("test") }, errors.CodeInternal},
		{"Canceled", func() *errors.Error { return errors.Canceled("test") }, errors.CodeCanceled},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.constructor()
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal("test", err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorIs() {
	err1 := errors.NotFound("a")
	err2 := errors.NotFound("b")
	err3 := errors.InvalidArgument("a")

	s.Assert().True(err1.Is(err2))
	s.Assert().False(err1.Is(err3))
	s.Assert().True(stderrors.Is(errors.Wrap(err1, "wrapped"), err2))
}

func (s *ErrorsTestSuite) TestHelperFunctions() {
	notFoundErr := errors.NotFound("test")
	rangeErr := errors.OutOfRangef("test")
	wrappedErr := errors.Wrap(rangeErr, "wrapped")

	s.Assert().True(errors.IsNotFound(notFoundErr))
	s.Assert().False(errors.IsNotFound(rangeErr))
	s.Assert().True(errors.IsOutOfRange(wrappedErr))
	s.Assert().True(errors.IsFailedPrecondition(errors.FailedPrecondition("x")))
	s.Assert().True(errors.IsInternal(fmt.Errorf("plain")))
	s.Assert().True(errors.IsCanceled(errors.Canceled("stop")))
	s.Assert().True(errors.IsAlreadyExists(errors.AlreadyExistsf("dup %s", "x")))
	s.Assert().True(errors.IsInvalidArgument(errors.InvalidArgumentf("bad %s", "x")))
}

func (s *ErrorsTestSuite) TestGetCode() {
	err := errors.NotFound("test")
	wrapped := errors.Wrap(err, "wrapped")

	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(err))
	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(wrapped))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("standard error")))
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
}

func (s *ErrorsTestSuite) TestGetMeta() {
	err := errors.OutOfRangef("short").WithMeta("token", "TRACK")

	s.Assert().Equal("TRACK", errors.GetMeta(errors.Wrap(err, "wrapped"))["token"])
	s.Assert().Nil(errors.GetMeta(fmt.Errorf("standard error")))
	s.Assert().Nil(errors.GetMeta(nil))
}

func (s *ErrorsTestSuite) TestExitCode() {
	testCases := []struct {
		code     errors.Code
		expected int
	}{
		{errors.CodeOK, 0},
		{errors.CodeInvalidArgument, 65},
		{errors.CodeOutOfRange, 65},
		{errors.CodeNotFound, 66},
		{errors.CodeFailedPrecondition, 78},
		{errors.CodeUnavailable, 69},
		{errors.CodeInternal, 70},
		{errors.CodeCanceled, 130},
	}

	for _, tc := range testCases {
		s.Run(tc.code.String(), func() {
			s.Assert().Equal(tc.expected, tc.code.ExitCode())
		})
	}
}
