package view

import (
	"testing"

	"Backend-Aavishkar/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyQueryReturnsEveryVisibleRow(t *testing.T) {
	s := NewSession(soloEvent("Code Relay"))
	s.LoadParticipants([]models.User{
		user("A", "a@x"), user("B", "b@x"), user("C", "c@x"),
	}, nil)
	s.Delete(SoloRow("c@x"))

	assert.Len(t, s.View("").Rows, 2)
	// ช่องว่างล้วนเท่ากับไม่กรอง
	assert.Len(t, s.View("   ").Rows, 2)
}

func TestSearchMatchesAllFields(t *testing.T) {
	s := NewSession(soloEvent("Code Relay"))
	s.LoadParticipants([]models.User{
		userFull("Alice Smith", "alice@college.edu", "EN2201", "9876543210"),
		userFull("Bob Jones", "bob@college.edu", "EN2202", "9123456780"),
	}, nil)

	cases := []struct {
		q    string
		want []string
	}{
		{"alice", []string{"alice@college.edu"}},
		{"ALICE", []string{"alice@college.edu"}}, // ไม่สนตัวพิมพ์
		{"Smith", []string{"alice@college.edu"}},
		{"bob@", []string{"bob@college.edu"}},
		{"EN2202", []string{"bob@college.edu"}},
		{"98765", []string{"alice@college.edu"}},
		{"college.edu", []string{"alice@college.edu", "bob@college.edu"}},
		{"nobody", []string{}},
	}
	for _, tc := range cases {
		got := []string{}
		for _, row := range s.View(tc.q).Rows {
			got = append(got, row.Key.Email())
		}
		assert.Equal(t, tc.want, got, "q=%q", tc.q)
	}
}

// ผลลัพธ์ของ search เป็น subset ของตารางเต็มเสมอ และ search ซ้ำด้วย
// คำเดิมบนผลลัพธ์เดิมต้องไม่ตัดแถวเพิ่ม
func TestSearchIsStableSubset(t *testing.T) {
	s := NewSession(soloEvent("Code Relay"))
	s.LoadParticipants([]models.User{
		userFull("Alice Smith", "alice@college.edu", "EN2201", ""),
		userFull("Bob Jones", "bob@college.edu", "", "9123456780"),
		user("Carol", "carol@college.edu"),
	}, nil)

	full := map[string]bool{}
	for _, row := range s.View("").Rows {
		full[row.Key.String()] = true
	}

	for _, q := range []string{"a", "col", "EN22", "912", "zzz"} {
		for _, row := range s.View(q).Rows {
			assert.True(t, full[row.Key.String()], "q=%q produced a row outside the full view", q)
			assert.True(t, matches(row.Participant, q), "q=%q kept a non-matching row", q)
		}
	}
}

func TestGroupSearchNarrowing(t *testing.T) {
	s := NewSession(groupEvent("Hackathon", 1, 5))
	s.LoadParticipants(nil, []models.Group{
		group("g1", user("Alice", "alice@x"), user("Bob", "bob@x"), user("Carol", "carol@x")),
		group("g2", user("Dave", "dave@x"), user("Erin", "erin@x")),
	})

	// หัวหน้า match เห็นทั้งกลุ่ม
	v := s.View("alice")
	require.Len(t, v.Groups, 1)
	require.NotNil(t, v.Groups[0].Leader)
	assert.Len(t, v.Groups[0].Members, 2)

	// สมาชิก match เหลือหัวหน้า + สมาชิกที่ match เท่านั้น
	v = s.View("bob")
	require.Len(t, v.Groups, 1)
	require.NotNil(t, v.Groups[0].Leader)
	require.Len(t, v.Groups[0].Members, 1)
	assert.Equal(t, "bob@x", v.Groups[0].Members[0].Key.Email())

	// ไม่มีใคร match ทั้งกลุ่มหาย
	v = s.View("erin")
	require.Len(t, v.Groups, 1)
	assert.Equal(t, "g2", v.Groups[0].GroupID)

	v = s.View("nobody")
	assert.Empty(t, v.Groups)
}

func TestGroupSearchSkipsHiddenRows(t *testing.T) {
	s := NewSession(groupEvent("Hackathon", 1, 5))
	s.LoadParticipants(nil, []models.Group{
		group("g1", user("Alice", "alice@x"), user("Bob", "bob@x")),
	})
	s.Delete(MemberRow("bob@x", "g1"))

	// สมาชิกที่ซ่อนไม่กลับมาแม้ search จะเจอ
	v := s.View("bob")
	assert.Empty(t, v.Groups)

	v = s.View("alice")
	require.Len(t, v.Groups, 1)
	assert.Empty(t, v.Groups[0].Members)
}

func TestSearchCoversTemporaryRows(t *testing.T) {
	s := NewSession(soloEvent("Code Relay"))
	s.LoadParticipants([]models.User{user("A", "a@x")}, nil)
	_, err := s.AddSolo(SoloInput{Name: "Walk In", Email: "walkin@x"})
	require.NoError(t, err)

	v := s.View("walk")
	require.Len(t, v.Rows, 1)
	assert.Equal(t, "walkin@x", v.Rows[0].Key.Email())
}
