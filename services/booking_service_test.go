package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"star-electricals-server/models"
)

func TestDeriveWorkerStatus(t *testing.T) {
	assert.Equal(t, models.WorkerStatusAvailable, DeriveWorkerStatus(0))
	assert.Equal(t, models.WorkerStatusBusy, DeriveWorkerStatus(1))
	assert.Equal(t, models.WorkerStatusBusy, DeriveWorkerStatus(5))
}
