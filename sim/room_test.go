package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperatingRoom_BeginOperation_FromFree(t *testing.T) {
	r := &OperatingRoom{ID: 1, State: RoomFree}
	p := &Patient{ID: 1}
	team := completeTeam(1)
	assert.True(t, r.BeginOperation(p, team, 100))
	assert.Equal(t, RoomBusy, r.State)
	assert.Same(t, p, r.Patient)
	assert.Equal(t, int64(100), r.OpStartTS)
}

func TestOperatingRoom_BeginOperation_NoOpWhenNotFree(t *testing.T) {
	r := &OperatingRoom{ID: 1, State: RoomBusy}
	assert.False(t, r.BeginOperation(&Patient{}, completeTeam(1), 100))
}

func TestOperatingRoom_EndOperation_FromBusy(t *testing.T) {
	r := &OperatingRoom{ID: 1, State: RoomBusy}
	assert.True(t, r.EndOperation(500))
	assert.Equal(t, RoomCleaning, r.State)
	assert.Equal(t, int64(500), r.OpEndTS)
}

func TestOperatingRoom_EndOperation_NoOpWhenNotBusy(t *testing.T) {
	r := &OperatingRoom{ID: 1, State: RoomFree}
	assert.False(t, r.EndOperation(500))
}

func TestOperatingRoom_CleaningComplete_ReleasesPointers(t *testing.T) {
	r := &OperatingRoom{ID: 1, State: RoomCleaning, Patient: &Patient{}, Team: completeTeam(1)}
	assert.True(t, r.CleaningComplete())
	assert.Equal(t, RoomFree, r.State)
	assert.Nil(t, r.Patient)
	assert.Nil(t, r.Team)
}

func TestOperatingRoom_CleaningComplete_NoOpWhenNotCleaning(t *testing.T) {
	r := &OperatingRoom{ID: 1, State: RoomFree}
	assert.False(t, r.CleaningComplete())
}

func TestOperatingRoom_SetMaintenance_OnFromFree(t *testing.T) {
	r := &OperatingRoom{ID: 1, State: RoomFree}
	assert.True(t, r.SetMaintenance(true))
	assert.Equal(t, RoomMaintenance, r.State)
}

func TestOperatingRoom_SetMaintenance_OnRejectedWhenBusy(t *testing.T) {
	r := &OperatingRoom{ID: 1, State: RoomBusy}
	assert.False(t, r.SetMaintenance(true))
}

func TestOperatingRoom_SetMaintenance_OffFromMaintenance(t *testing.T) {
	r := &OperatingRoom{ID: 1, State: RoomMaintenance}
	assert.True(t, r.SetMaintenance(false))
	assert.Equal(t, RoomFree, r.State)
}
