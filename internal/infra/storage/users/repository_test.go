package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

func TestRepository_GetByEmployeeID(t *testing.T) {
	repo := NewRepository(domain.DefaultUsers())

	u, err := repo.GetByEmployeeID(context.Background(), "EMP002")
	require.NoError(t, err)
	assert.Equal(t, "Pratiksha", u.Name)

	_, err = repo.GetByEmployeeID(context.Background(), "emp003")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = repo.GetByEmployeeID(context.Background(), "EMP999")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestRepository_ReturnsCopy(t *testing.T) {
	repo := NewRepository(domain.DefaultUsers())

	u, err := repo.GetByEmployeeID(context.Background(), "EMP001")
	require.NoError(t, err)
	u.Name = "changed"

	again, err := repo.GetByEmployeeID(context.Background(), "EMP001")
	require.NoError(t, err)
	assert.Equal(t, "Ganesh", again.Name)
}
