package view

import (
	"sort"
	"strings"

	"Backend-Aavishkar/src/models"
)

// roster จาก server เคยส่งแถวซ้ำมาได้ เลยตัดซ้ำทันทีหลัง fetch
// key คือ lowercase(email) แถวแรกที่เจอชนะ dedup ซ้ำสองรอบได้ผลเท่ารอบเดียว

func dedupSolo(participants []models.User) []models.User {
	seen := map[string]bool{}
	result := []models.User{}
	for _, p := range participants {
		key := strings.ToLower(p.Email)
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, p)
	}
	return result
}

func dedupGroups(groups []models.Group) []models.Group {
	seenGroup := map[string]bool{}
	result := []models.Group{}
	for _, g := range groups {
		groupKey := g.GroupID + "|" + strings.ToLower(g.Leader.Email)
		if seenGroup[groupKey] {
			continue
		}
		seenGroup[groupKey] = true

		kept := models.Group{GroupID: g.GroupID, Leader: g.Leader, Members: []models.User{}}
		seenMember := map[string]bool{}
		for _, m := range g.Members {
			key := strings.ToLower(m.Email)
			if seenMember[key] {
				continue
			}
			seenMember[key] = true
			kept.Members = append(kept.Members, m)
		}
		result = append(result, kept)
	}
	return result
}

// dedupAttendance เรียงใหม่สุดก่อนตาม createdAt แล้วเก็บรายการแรกต่ออีเมล
func dedupAttendance(records []models.AttendanceRecord) []models.AttendanceRecord {
	sorted := make([]models.AttendanceRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	seen := map[string]bool{}
	result := []models.AttendanceRecord{}
	for _, r := range sorted {
		key := strings.ToLower(r.UserID.Email)
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, r)
	}
	return result
}
