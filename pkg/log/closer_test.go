package log

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fileMock 로그 파일(io.Closer + Sync)을 흉내내는 Mock입니다.
type fileMock struct {
	mock.Mock
}

func (f *fileMock) Close() error { return f.Called().Error(0) }
func (f *fileMock) Sync() error  { return f.Called().Error(0) }

// plainCloser Sync를 지원하지 않는 io.Closer입니다.
type plainCloser struct {
	err    error
	closed int
}

func (p *plainCloser) Close() error {
	p.closed++
	return p.err
}

func TestCloser_Close(t *testing.T) {
	errClose := errors.New("close failed")

	tests := []struct {
		name     string
		closers  []*plainCloser
		withNil  bool
		wantErrs []error
	}{
		{
			name:    "모두 성공",
			closers: []*plainCloser{{}, {}},
		},
		{
			name:     "중간 실패에도 나머지를 닫음",
			closers:  []*plainCloser{{}, {err: errClose}, {}},
			wantErrs: []error{errClose},
		},
		{
			name:    "nil 요소는 건너뜀",
			closers: []*plainCloser{{}},
			withNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var list []io.Closer
			if tt.withNil {
				list = append(list, nil)
			}
			for _, pc := range tt.closers {
				list = append(list, pc)
			}

			h := &hook{}
			c := &closer{closers: list, hook: h}

			err := c.Close()
			if tt.wantErrs == nil {
				require.NoError(t, err)
			}
			for _, want := range tt.wantErrs {
				assert.ErrorIs(t, err, want)
			}

			assert.True(t, h.closed, "Hook도 함께 닫혀야 합니다")
			for i, pc := range tt.closers {
				assert.Equal(t, 1, pc.closed, "closers[%d]", i)
			}
		})
	}
}

func TestCloser_Idempotent(t *testing.T) {
	pc := &plainCloser{}
	c := &closer{closers: []io.Closer{pc}}

	require.NoError(t, c.Close())
	require.NoError(t, c.Close())

	assert.Equal(t, 1, pc.closed, "두 번째 호출은 아무 작업도 하지 않아야 합니다")
}

func TestCloser_SyncBeforeClose(t *testing.T) {
	f := new(fileMock)
	syncCall := f.On("Sync").Return(errors.New("sync failed")).Once()
	f.On("Close").Return(nil).Once().NotBefore(syncCall)

	c := &closer{closers: []io.Closer{f}}

	assert.NoError(t, c.Close(), "Sync 실패는 무시됩니다")
	f.AssertExpectations(t)
}
