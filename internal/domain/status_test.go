package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScheduleStatus_Labels(t *testing.T) {
	tests := []struct {
		name   string
		status ScheduleStatus
		want   string
	}{
		{"remaining", ScheduleStatus{Kind: ScheduleRemaining, Days: 5}, "5 days left"},
		{"due today", ScheduleStatus{Kind: ScheduleDueToday}, "Due today"},
		{"overdue", ScheduleStatus{Kind: ScheduleOverdue, Days: 3}, "3 days overdue"},
		{"early", ScheduleStatus{Kind: ScheduleEarly, Days: 2}, "+ 2 days"},
		{"late", ScheduleStatus{Kind: ScheduleLate, Days: 2}, "2 days"},
		{"on time", ScheduleStatus{Kind: ScheduleOnTime}, "0 day"},
		{"unknown", ScheduleStatus{Kind: ScheduleUnknown}, "--"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.Label())
		})
	}
}

func TestScheduleStatus_Completed(t *testing.T) {
	assert.True(t, ScheduleStatus{Kind: ScheduleEarly, Days: 1}.Completed())
	assert.True(t, ScheduleStatus{Kind: ScheduleLate, Days: 1}.Completed())
	assert.True(t, ScheduleStatus{Kind: ScheduleOnTime}.Completed())
	assert.False(t, ScheduleStatus{Kind: ScheduleRemaining, Days: 4}.Completed())
	assert.False(t, ScheduleStatus{Kind: ScheduleOverdue, Days: 4}.Completed())
	assert.False(t, ScheduleStatus{Kind: ScheduleDueToday}.Completed())
	assert.False(t, ScheduleStatus{Kind: ScheduleUnknown}.Completed())
}

func TestHomeSection_TableCoversAllRoles(t *testing.T) {
	roles := []Role{RoleMerchandiser, RoleCadDesigner, RoleFabricStaff, RoleSampleStaff, RoleManagement}
	for _, r := range roles {
		assert.NotEmpty(t, HomeSection(r), "role %s has no landing section", r)
	}
	assert.Equal(t, SectionOverview, HomeSection(Role("intern")))
}
