package driver_test

import (
	"testing"

	"rental/internal/core/domain/model/driver"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDriver(t *testing.T) {
	d, err := driver.NewDriver(kernel.NewUUID(), " Joko ", "0813 1111 2222")

	require.NoError(t, err)
	require.NoError(t, d.Validate())
	assert.Equal(t, "Joko", d.Name())
	assert.True(t, d.IsAvailable())
}

func TestNewDriver_Invalid(t *testing.T) {
	_, err := driver.NewDriver(kernel.NewUUID(), "", "")

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "driver name")
	assert.Contains(t, err.Error(), "driver phone")
}

func TestDriver_ChangeStatus(t *testing.T) {
	d, err := driver.RestoreDriver(kernel.NewUUID(), "Sari", "0812", driver.OnDuty)
	require.NoError(t, err)
	assert.False(t, d.IsAvailable())

	require.NoError(t, d.ChangeStatus(driver.Available))
	require.NoError(t, d.ChangeStatus(driver.Available))
	assert.True(t, d.IsAvailable())

	require.Error(t, d.ChangeStatus(driver.Status(9)))
}

func TestParseStatus(t *testing.T) {
	s, err := driver.ParseStatus("on_duty")
	require.NoError(t, err)
	assert.Equal(t, driver.OnDuty, s)
	assert.Equal(t, "on_duty", s.String())

	_, err = driver.ParseStatus("busy")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
