package view

import (
	"testing"
	"time"

	"Backend-Aavishkar/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSoloCountersAndHide(t *testing.T) {
	s := NewSession(soloEvent("Code Relay"))
	s.LoadParticipants([]models.User{
		user("A", "a@x"),
		user("B", "b@x"),
		user("C", "c@x"),
	}, nil)
	now := time.Now()
	s.LoadAttendance([]models.AttendanceRecord{
		record("a@x", models.StatusPresent, now),
		record("b@x", models.StatusAbsent, now),
	})

	c := s.Counters()
	assert.Equal(t, Counters{Total: 3, Present: 1, Absent: 2, Rate: 33}, c)

	// ซ่อนแถวของ a@x แล้ว Present ต้องหายไปด้วย
	s.Delete(SoloRow("a@x"))
	c = s.Counters()
	assert.Equal(t, Counters{Total: 2, Present: 0, Absent: 2, Rate: 0}, c)
	assert.True(t, s.Hidden(SoloRow("a@x")))

	// แถวที่ไม่มี record ยังโชว์ record เป็น nil
	v := s.View("")
	require.Len(t, v.Rows, 2)
	assert.Nil(t, v.Rows[1].Record)
}

func TestRosterDedupBeforeCounting(t *testing.T) {
	s := NewSession(soloEvent("Code Relay"))
	s.LoadParticipants([]models.User{
		user("A", "a@x"),
		user("A2", "A@X"),
		user("B", "b@x"),
	}, nil)

	v := s.View("")
	require.Len(t, v.Rows, 2)
	assert.Equal(t, Counters{Total: 2, Present: 0, Absent: 2, Rate: 0}, s.Counters())
}

// คนเดียวกันเป็นหัวหน้ากลุ่มหนึ่งและสมาชิกอีกกลุ่ม ซ่อนได้ทีละบริบท
func TestHideIsPerRowContext(t *testing.T) {
	alice := user("Alice", "alice@x")
	s := NewSession(groupEvent("Hackathon", 1, 5))
	s.LoadParticipants(nil, []models.Group{
		group("g1", alice, user("Bob", "bob@x")),
		group("g2", user("Carol", "carol@x"), alice),
	})
	s.LoadAttendance([]models.AttendanceRecord{
		record("alice@x", models.StatusPresent, time.Now()),
	})

	before := s.Counters()
	assert.Equal(t, 4, before.Total)
	assert.Equal(t, 1, before.Present)

	s.Delete(MemberRow("alice@x", "g2"))

	after := s.Counters()
	assert.Equal(t, 3, after.Total)
	// แถวหัวหน้าใน g1 ยังเห็นอยู่ record ของ alice จึงยังนับ
	assert.Equal(t, 1, after.Present)

	v := s.View("")
	require.Len(t, v.Groups, 2)
	require.NotNil(t, v.Groups[0].Leader)
	assert.Equal(t, "alice@x", v.Groups[0].Leader.Key.Email())
	assert.Empty(t, v.Groups[1].Members)

	// ซ่อนอีกบริบทที่เหลือ ตอนนี้ record ของ alice ไม่นับแล้ว
	s.Delete(LeaderRow("alice@x", "g1"))
	assert.Equal(t, 0, s.Counters().Present)
}

func TestHiddenLeaderKeepsGroupVisible(t *testing.T) {
	s := NewSession(groupEvent("Hackathon", 1, 5))
	s.LoadParticipants(nil, []models.Group{
		group("g1", user("Alice", "alice@x"), user("Bob", "bob@x")),
	})

	s.Delete(LeaderRow("alice@x", "g1"))

	v := s.View("")
	require.Len(t, v.Groups, 1)
	assert.Nil(t, v.Groups[0].Leader)
	require.Len(t, v.Groups[0].Members, 1)

	// ซ่อนสมาชิกที่เหลือด้วย ทั้งกลุ่มต้องหายจากตาราง
	s.Delete(MemberRow("bob@x", "g1"))
	assert.Empty(t, s.View("").Groups)
	assert.Equal(t, Counters{}, s.Counters())
}

func TestAddSoloTemporary(t *testing.T) {
	s := NewSession(soloEvent("Code Relay"))
	s.LoadParticipants([]models.User{user("A", "a@x")}, nil)

	p, err := s.AddSolo(SoloInput{Name: "Walk In", Email: "walkin@x"})
	require.NoError(t, err)
	assert.True(t, p.IsTemporary)
	assert.Contains(t, p.ID, "temp_")

	// นับเป็น PRESENT ทันที และต่อท้ายรายชื่อจริง
	v := s.View("")
	require.Len(t, v.Rows, 2)
	assert.Equal(t, "walkin@x", v.Rows[1].Key.Email())
	require.NotNil(t, v.Rows[1].Record)
	assert.Equal(t, models.StatusPresent, v.Rows[1].Record.Status)
	assert.Equal(t, Counters{Total: 2, Present: 1, Absent: 1, Rate: 50}, s.Counters())

	key := SoloRow("walkin@x")
	assert.True(t, s.IsTemporary(key))
	assert.False(t, s.CanMutate(key))
	assert.True(t, s.CanMutate(SoloRow("a@x")))

	// ลบแถวชั่วคราว = หายจริง ไม่ใช่แค่ซ่อน counters กลับที่เดิม
	s.Delete(key)
	assert.False(t, s.Hidden(key))
	assert.Equal(t, Counters{Total: 1, Present: 0, Absent: 1, Rate: 0}, s.Counters())
}

func TestAddSoloValidation(t *testing.T) {
	s := NewSession(soloEvent("Code Relay"))
	s.LoadParticipants([]models.User{user("A", "a@x")}, nil)

	_, err := s.AddSolo(SoloInput{Name: "  ", Email: "x@x"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = s.AddSolo(SoloInput{Name: "X", Email: ""})
	assert.ErrorIs(t, err, ErrValidation)

	// อีเมลชนกับ roster จริง เทียบแบบไม่สนตัวพิมพ์
	_, err = s.AddSolo(SoloInput{Name: "Dup", Email: "A@X"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	// อีเมลชนกับรายการชั่วคราวที่เพิ่มไปแล้ว
	_, err = s.AddSolo(SoloInput{Name: "Walk In", Email: "walkin@x"})
	require.NoError(t, err)
	_, err = s.AddSolo(SoloInput{Name: "Walk In 2", Email: "WALKIN@x"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestAddGroupTemporary(t *testing.T) {
	// minMember=2 maxMember=4 => สมาชิกไม่รวมหัวหน้าต้องอยู่ใน [1,3]
	s := NewSession(groupEvent("Hackathon", 2, 4))
	s.LoadParticipants(nil, []models.Group{
		group("g1", user("Alice", "alice@x"), user("Bob", "bob@x")),
	})

	leader := GroupMemberInput{Name: "Dana", Email: "dana@x"}

	_, err := s.AddGroup(GroupInput{Leader: leader})
	assert.ErrorIs(t, err, ErrValidation, "too few members")

	_, err = s.AddGroup(GroupInput{Leader: leader, Members: []GroupMemberInput{
		{Name: "M1", Email: "m1@x"},
		{Name: "M2", Email: "m2@x"},
		{Name: "M3", Email: "m3@x"},
		{Name: "M4", Email: "m4@x"},
	}})
	assert.ErrorIs(t, err, ErrValidation, "too many members")

	_, err = s.AddGroup(GroupInput{Leader: leader, Members: []GroupMemberInput{
		{Name: "M1", Email: "m1@x"},
		{Name: "M2", Email: "M1@X"},
	}})
	assert.ErrorIs(t, err, ErrDuplicateEmail, "duplicate within form")

	_, err = s.AddGroup(GroupInput{Leader: leader, Members: []GroupMemberInput{
		{Name: "Dup", Email: "bob@x"},
	}})
	assert.ErrorIs(t, err, ErrDuplicateEmail, "collides with roster")

	g, err := s.AddGroup(GroupInput{Leader: leader, Members: []GroupMemberInput{
		{Name: "M1", Email: "m1@x"},
		{Name: "M2", Email: "m2@x"},
	}})
	require.NoError(t, err)
	assert.Contains(t, g.GroupID, "temp_group_")
	assert.True(t, g.Leader.IsTemporary)

	// ทุกคนในกลุ่มได้ record PRESENT
	c := s.Counters()
	assert.Equal(t, 5, c.Total)
	assert.Equal(t, 3, c.Present)
	assert.Equal(t, 60, c.Rate)

	// ลบหัวหน้าชั่วคราว = ทั้งกลุ่มหาย
	s.Delete(LeaderRow("dana@x", g.GroupID))
	assert.Equal(t, Counters{Total: 2, Present: 0, Absent: 2, Rate: 0}, s.Counters())
	assert.Nil(t, s.RecordFor("m1@x"))
}

func TestDeleteTempMemberKeepsRestOfGroup(t *testing.T) {
	s := NewSession(groupEvent("Hackathon", 1, 5))

	g, err := s.AddGroup(GroupInput{
		Leader:  GroupMemberInput{Name: "Dana", Email: "dana@x"},
		Members: []GroupMemberInput{{Name: "M1", Email: "m1@x"}, {Name: "M2", Email: "m2@x"}},
	})
	require.NoError(t, err)

	s.Delete(MemberRow("m1@x", g.GroupID))

	v := s.View("")
	require.Len(t, v.Groups, 1)
	require.Len(t, v.Groups[0].Members, 1)
	assert.Equal(t, "m2@x", v.Groups[0].Members[0].Key.Email())
	assert.Nil(t, s.RecordFor("m1@x"))
	assert.NotNil(t, s.RecordFor("dana@x"))
}

func TestCountersRateRounding(t *testing.T) {
	s := NewSession(soloEvent("Code Relay"))
	s.LoadParticipants([]models.User{
		user("A", "a@x"), user("B", "b@x"), user("C", "c@x"),
	}, nil)
	now := time.Now()
	s.LoadAttendance([]models.AttendanceRecord{
		record("a@x", models.StatusPresent, now),
		record("b@x", models.StatusPresent, now),
	})

	// 2/3 = 66.67 ปัดเป็น 67
	assert.Equal(t, 67, s.Counters().Rate)
}

func TestCountersEmptyRoster(t *testing.T) {
	s := NewSession(soloEvent("Code Relay"))
	assert.Equal(t, Counters{}, s.Counters())
}

func TestLoadAttendanceReplacesSnapshot(t *testing.T) {
	s := NewSession(soloEvent("Code Relay"))
	s.LoadParticipants([]models.User{user("A", "a@x")}, nil)
	now := time.Now()

	s.LoadAttendance([]models.AttendanceRecord{record("a@x", models.StatusAbsent, now)})
	require.NotNil(t, s.RecordFor("a@x"))
	assert.Equal(t, models.StatusAbsent, s.RecordFor("a@x").Status)

	s.LoadAttendance([]models.AttendanceRecord{record("a@x", models.StatusPresent, now.Add(time.Minute))})
	assert.Equal(t, models.StatusPresent, s.RecordFor("a@x").Status)
}
