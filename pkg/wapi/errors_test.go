package wapi_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gridpoint-io/nios/pkg/wapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		contains []string
	}{
		{
			name:     "config error",
			err:      &wapi.ConfigError{Option: "host", Reason: "can not be blank"},
			contains: []string{"host", "can not be blank"},
		},
		{
			name:     "validation error",
			err:      &wapi.ValidationError{Reason: "path in request must be relative"},
			contains: []string{"relative"},
		},
		{
			name:     "auth error",
			err:      &wapi.AuthError{StatusCode: 401},
			contains: []string{"credentials"},
		},
		{
			name: "search error",
			err: &wapi.SearchError{
				ObjectType: "network",
				Content:    []byte(`{"text":"not found"}`),
				StatusCode: 404,
			},
			contains: []string{"network", "404", "not found"},
		},
		{
			name: "cannot create error",
			err: &wapi.CannotCreateError{
				ObjectType: "network",
				Content:    []byte(`{"text":"bad request"}`),
				StatusCode: 400,
			},
			contains: []string{"network", "400"},
		},
		{
			name: "func call error",
			err: &wapi.FuncCallError{
				Ref:        "record:host/ZG5zLmhvc3Q:h1/default",
				FuncName:   "next_available_ip",
				StatusCode: 400,
			},
			contains: []string{"next_available_ip", "record:host"},
		},
		{
			name: "cannot update error",
			err: &wapi.CannotUpdateError{
				Ref:        "network/ZG5zLm5ldHdvcms:10.0.0.0/default",
				StatusCode: 400,
			},
			contains: []string{"update", "network/ZG5zLm5ldHdvcms"},
		},
		{
			name: "cannot delete error",
			err: &wapi.CannotDeleteError{
				Ref:        "network/ZG5zLm5ldHdvcms:10.0.0.0/default",
				StatusCode: 400,
			},
			contains: []string{"delete", "400"},
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			message := testCase.err.Error()
			for _, fragment := range testCase.contains {
				assert.Contains(t, message, fragment)
			}
		})
	}
}

func TestErrorHelpers(t *testing.T) {
	t.Parallel()
	t.Run("auth error through wrapping", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("getting objects: %w", &wapi.AuthError{StatusCode: 401})
		assert.True(t, wapi.IsAuthError(err))
		assert.False(t, wapi.IsTimeout(err))
	})

	t.Run("timeout unwraps to cause", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("deadline exceeded")
		err := &wapi.TimeoutError{Err: cause}

		assert.True(t, wapi.IsTimeout(err))
		require.ErrorIs(t, err, cause)
	})

	t.Run("connection error unwraps to cause", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("connection refused")
		err := &wapi.ConnectionError{Reason: cause}

		assert.True(t, wapi.IsConnectionError(err))
		require.ErrorIs(t, err, cause)
	})

	t.Run("connection error without cause reports content", func(t *testing.T) {
		t.Parallel()

		err := &wapi.ConnectionError{Content: []byte("<html>oops</html>")}
		assert.Contains(t, err.Error(), "unexpected reply")
		assert.Contains(t, err.Error(), "<html>oops</html>")
	})

	t.Run("member already assigned", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("creating object: %w", &wapi.MemberAlreadyAssignedError{
			ObjectType: "member",
			StatusCode: 400,
		})
		assert.True(t, wapi.IsMemberAlreadyAssigned(err))

		createErr := &wapi.CannotCreateError{}
		assert.False(t, errors.As(err, &createErr))
	})
}
