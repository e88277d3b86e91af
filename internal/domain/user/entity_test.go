//go:build unit

package user_test

import (
	"testing"

	"cleanspace/internal/domain/user"
	"cleanspace/internal/testutil/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmp.AllowUnexported(user.User{}, user.Email{}),
	cmpopts.EquateEmpty(),
}

func TestUser(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)

		email, _ := user.NewEmail("jane@example.com")
		expected := user.NewUser("Jane", "Doe", email, "hashed_password")

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, uuid.Nil, actual.ID())
	})

	t.Run("identity equality", func(t *testing.T) {
		u, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)

		id := uuid.New()
		assert.False(t, u.Equal(u))
		assert.True(t, u.WithID(id).Equal(u.WithID(id)))
	})
}

func TestEmail(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		errIs error
	}{
		{name: "valid", in: "valid@example.com"},
		{name: "surrounding spaces trimmed", in: "  valid@example.com "},
		{name: "empty", in: "", errIs: user.ErrInvalidEmail},
		{name: "missing at", in: "invalid.example.com", errIs: user.ErrInvalidEmail},
		{name: "missing domain", in: "user@", errIs: user.ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := user.NewEmail(tt.in)
			if tt.errIs == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.errIs)
		})
	}

	t.Run("compared case-insensitively", func(t *testing.T) {
		a, _ := user.NewEmail("Jane@Example.com")
		b, _ := user.NewEmail("jane@example.com")
		assert.True(t, a.EqualFold(b))
		assert.Equal(t, "jane@example.com", a.Normalized())
		assert.Equal(t, "Jane@Example.com", a.Value())
	})
}
