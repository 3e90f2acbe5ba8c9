package passwords

import "strings"

// รหัสผ่านประจำ event แจกให้ organizer หน้างาน ไม่ใช่ auth รายคน
var eventPasswords = map[string]string{
	"aavishkar":      "AAVI2025",
	"cineverse":      "CINE2025",
	"stock x stake":  "STOCK2025",
	"split or steal": "SPLIT2025",
	"resume relay":   "RESUME2025",
	"meme fest":      "MEME2025",
	"data loom":      "DATA2025",
	"man in middle":  "MITM2025",
	"human or ai":    "HUMAN2025",
	"escape room":    "ESCAPE2025",
	"tech debate":    "TECH2025",
	"no keyclick":    "NOKEY2025",
	"tech ladder":    "LADDER2025",
	"cyber chase":    "CYBER2025",
	"decode & dash":  "DECODE2025",
	"code relay":     "RELAY2025",
	"codewinglet":    "WING2025",
}

// Verify ตรวจรหัสผ่านของ event ชื่อ event ไม่สนตัวพิมพ์เล็กใหญ่
func Verify(eventName, password string) bool {
	correct, ok := eventPasswords[strings.ToLower(eventName)]
	return ok && correct == password
}

// GetEventPassword คืนรหัสผ่านของ event ถ้าไม่รู้จักใช้ค่า default
func GetEventPassword(eventName string) string {
	if p, ok := eventPasswords[strings.ToLower(eventName)]; ok {
		return p
	}
	return "DEFAULT2025"
}
