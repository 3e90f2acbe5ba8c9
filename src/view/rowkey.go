package view

import "strings"

// RowKey ระบุแถวหนึ่งแถวบนตาราง ไม่ใช่ id ฝั่ง server
// คนเดียวกันเป็นหัวหน้ากลุ่มหนึ่งและสมาชิกอีกกลุ่มได้ ถือเป็นคนละแถว
// และซ่อนแยกกันได้
type RowKey struct {
	kind    rowKind
	email   string // lowercase เสมอ
	groupID string // ว่างสำหรับ SOLO
}

type rowKind int

const (
	kindSolo rowKind = iota
	kindLeader
	kindMember
)

// SoloRow แถวของ SOLO event
func SoloRow(email string) RowKey {
	return RowKey{kind: kindSolo, email: strings.ToLower(email)}
}

// LeaderRow แถวหัวหน้าของกลุ่ม groupID
func LeaderRow(email, groupID string) RowKey {
	return RowKey{kind: kindLeader, email: strings.ToLower(email), groupID: groupID}
}

// MemberRow แถวสมาชิกของกลุ่ม groupID
func MemberRow(email, groupID string) RowKey {
	return RowKey{kind: kindMember, email: strings.ToLower(email), groupID: groupID}
}

// Email อีเมล (lowercase) ของแถว
func (k RowKey) Email() string { return k.email }

// GroupID กลุ่มของแถว ว่างสำหรับ SOLO
func (k RowKey) GroupID() string { return k.groupID }

// String รูปแบบเดียวกับ key ฝั่งหน้าเว็บ
// SOLO: email, หัวหน้า: email_leader_gid, สมาชิก: email_member_gid
func (k RowKey) String() string {
	switch k.kind {
	case kindLeader:
		return k.email + "_leader_" + k.groupID
	case kindMember:
		return k.email + "_member_" + k.groupID
	default:
		return k.email
	}
}

// Less ลำดับรวมของ RowKey ใช้ทำ ordering ที่ deterministic
func (k RowKey) Less(o RowKey) bool {
	if k.kind != o.kind {
		return k.kind < o.kind
	}
	if k.email != o.email {
		return k.email < o.email
	}
	return k.groupID < o.groupID
}
