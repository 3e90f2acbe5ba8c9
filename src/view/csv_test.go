package view

import (
	"strings"
	"testing"

	"Backend-Aavishkar/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exportLines(t *testing.T, s *Session) []string {
	t.Helper()
	data, _, err := s.ExportCSV()
	require.NoError(t, err)
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

func TestExportSoloCSV(t *testing.T) {
	s := NewSession(soloEvent("Code Relay"))
	s.LoadParticipants([]models.User{
		userFull("Alice Smith", "alice@college.edu", "EN2201", "9876543210"),
		user("Bob Jones", "bob@college.edu"),
	}, nil)

	data, filename, err := s.ExportCSV()
	require.NoError(t, err)
	assert.Equal(t, "Code Relay_attendance.csv", filename)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Name,Email,Enrollment No,Phone Number,Signature", lines[0])
	assert.Equal(t, "Alice Smith,alice@college.edu,EN2201,9876543210,", lines[1])
	// ช่องที่ไม่มีข้อมูลพิมพ์ — ช่อง Signature ว่างเสมอ
	assert.Equal(t, "Bob Jones,bob@college.edu,—,—,", lines[2])
}

func TestExportGroupCSV(t *testing.T) {
	s := NewSession(groupEvent("Hackathon", 1, 5))
	s.LoadParticipants(nil, []models.Group{
		group("g1", user("Alice", "alice@x"), user("Bob", "bob@x")),
		group("g2", user("Carol", "carol@x")),
	})

	// แถวว่างท้ายกลุ่มสุดท้ายหายไปกับ TrimRight ใน exportLines
	lines := exportLines(t, s)
	require.Len(t, lines, 5)
	assert.Equal(t, "Alice (Leader),alice@x,—,—,", lines[1])
	assert.Equal(t, "Bob,bob@x,—,—,", lines[2])
	assert.Equal(t, "", lines[3]) // แถวว่างคั่นกลุ่ม
	assert.Equal(t, "Carol (Leader),carol@x,—,—,", lines[4])
}

func TestExportSkipsHiddenIgnoresSearch(t *testing.T) {
	s := NewSession(soloEvent("Code Relay"))
	s.LoadParticipants([]models.User{
		user("A", "a@x"), user("B", "b@x"),
	}, nil)
	s.Delete(SoloRow("a@x"))

	lines := exportLines(t, s)
	require.Len(t, lines, 2)
	assert.Equal(t, "B,b@x,—,—,", lines[1])
}

func TestExportQuotesFieldsWithCommas(t *testing.T) {
	s := NewSession(soloEvent("Code Relay"))
	s.LoadParticipants([]models.User{
		user("Smith, Alice", "alice@x"),
	}, nil)

	lines := exportLines(t, s)
	require.Len(t, lines, 2)
	assert.Equal(t, `"Smith, Alice",alice@x,—,—,`, lines[1])
}

func TestExportIncludesTemporaryRows(t *testing.T) {
	s := NewSession(soloEvent("Code Relay"))
	s.LoadParticipants([]models.User{user("A", "a@x")}, nil)
	_, err := s.AddSolo(SoloInput{Name: "Walk In", Email: "walkin@x", PhoneNumber: "9000000001"})
	require.NoError(t, err)

	lines := exportLines(t, s)
	require.Len(t, lines, 3)
	assert.Equal(t, "Walk In,walkin@x,—,9000000001,", lines[2])
}

func TestExportFilenameFallback(t *testing.T) {
	s := NewSession(soloEvent(""))
	_, filename, err := s.ExportCSV()
	require.NoError(t, err)
	assert.Equal(t, "event_attendance.csv", filename)
}
