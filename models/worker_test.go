package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkerIsOnLeave(t *testing.T) {
	w := Worker{Status: WorkerStatusOnLeave}
	assert.True(t, w.IsOnLeave())

	w.Status = WorkerStatusAvailable
	assert.False(t, w.IsOnLeave())

	w.Status = WorkerStatusBusy
	assert.False(t, w.IsOnLeave())
}

func TestIsValidWorkerStatus(t *testing.T) {
	assert.True(t, IsValidWorkerStatus(WorkerStatusAvailable))
	assert.True(t, IsValidWorkerStatus(WorkerStatusBusy))
	assert.True(t, IsValidWorkerStatus(WorkerStatusOnLeave))
	assert.False(t, IsValidWorkerStatus("Retired"))
	assert.False(t, IsValidWorkerStatus(""))
}
