package logger

import "go.uber.org/mock/gomock"

// NewAnyLogMock mocks all log levels apart from error and allows any times execution.
func NewAnyLogMock(ctrl *gomock.Controller) *MockLogger {
	mock := NewMockLogger(ctrl)
	mock.EXPECT().Debug(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	mock.EXPECT().Info(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	mock.EXPECT().Warn(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	// error is not expected by default, the tests which check errors set the expectation explicitly

	return mock
}
