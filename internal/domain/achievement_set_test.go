package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func newAchievement(id string, d Details) *Achievement {
	return &Achievement{ID: id, Details: d, CreatedAt: testNow}
}

func TestNewAchievementSet_AllCategoriesEmpty(t *testing.T) {
	s := NewAchievementSet()
	require.Len(t, s, len(Categories))
	for _, c := range Categories {
		items, ok := s[c]
		assert.True(t, ok, "category %s should be present", c)
		assert.Empty(t, items)
	}
	assert.Equal(t, 0, s.Len())
}

func TestAchievementSet_AddRoutesByVariant(t *testing.T) {
	s := NewAchievementSet()
	s.Add(newAchievement("r1", Research{Title: "Paper", Quartile: QuartileQ1}))
	s.Add(newAchievement("c1", Conference{Title: "Conf", Type: ConferenceLocal, Role: RoleKeynote}))
	s.Add(newAchievement("r2", Research{Title: "Paper 2", Quartile: QuartileQ3}))

	require.Len(t, s[CategoryResearch], 2)
	require.Len(t, s[CategoryConferences], 1)
	assert.Equal(t, "r1", s[CategoryResearch][0].ID)
	assert.Equal(t, "r2", s[CategoryResearch][1].ID, "insertion order preserved")
	assert.Equal(t, 3, s.Len())
}

func TestAchievementSet_Remove(t *testing.T) {
	s := NewAchievementSet()
	s.Add(newAchievement("p1", Patent{Title: "Widget", Status: PatentGranted}))
	s.Add(newAchievement("p2", Patent{Title: "Gadget", Status: PatentPending}))

	removed, ok := s.Remove("p1")
	require.True(t, ok)
	assert.Equal(t, "Widget", removed.Label())
	require.Len(t, s[CategoryPatents], 1)
	assert.Equal(t, "p2", s[CategoryPatents][0].ID)

	_, ok = s.Remove("missing")
	assert.False(t, ok)
}

func TestAchievementSet_CloneIsIndependent(t *testing.T) {
	s := NewAchievementSet()
	s.Add(newAchievement("t1", Training{Title: "Course", Certified: true}))

	cp := s.Clone()
	cp[CategoryTraining][0].Points = 99
	cp.Add(newAchievement("t2", Training{Title: "Workshop"}))

	assert.Equal(t, 0, s[CategoryTraining][0].Points)
	assert.Len(t, s[CategoryTraining], 1)
	assert.Len(t, cp[CategoryTraining], 2)
}

func TestAchievementSet_MergeLeavesOriginalUntouched(t *testing.T) {
	s := NewAchievementSet()
	s.Add(newAchievement("s1", Supervision{StudentName: "Ada", Type: SupervisionPhD}))

	extra := NewAchievementSet()
	extra.Add(newAchievement("s2", Supervision{StudentName: "Grace", Type: SupervisionMasters}))

	merged := s.Merge(extra)
	assert.Equal(t, 2, merged.Len())
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 1, extra.Len())
}

func TestAchievementSet_AllFollowsCategoryOrder(t *testing.T) {
	s := NewAchievementSet()
	s.Add(newAchievement("teach", Teaching{Title: "Intro", Type: TeachingLectures}))
	s.Add(newAchievement("res", Research{Title: "Paper", Quartile: QuartileQ2}))

	all := s.All()
	require.Len(t, all, 2)
	assert.Equal(t, "res", all[0].ID)
	assert.Equal(t, "teach", all[1].ID)
}

func TestAchievement_Meta(t *testing.T) {
	cases := []struct {
		details Details
		want    string
	}{
		{Research{Quartile: QuartileQ4}, "Q4"},
		{Patent{Status: PatentPending}, "pending"},
		{Supervision{Type: SupervisionGraduation}, "graduation"},
		{Conference{Type: ConferenceInternational, Role: RoleOrganizer}, "international / organizer"},
		{Training{Certified: true}, "certified"},
		{Training{}, "uncertified"},
		{Teaching{Type: TeachingAssessment}, "assessment"},
		{Research{}, "-"},
	}
	for _, tc := range cases {
		a := &Achievement{Details: tc.details}
		assert.Equal(t, tc.want, a.Meta(), "details=%#v", tc.details)
	}
}
