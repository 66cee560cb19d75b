package lawparse

import (
	"reflect"
	"testing"
)

func TestParse_TwoSections(t *testing.T) {
	raw := "มาตรา 1 เนื้อหา A\nมาตรา 2 เนื้อหา B"
	secs := Parse(raw, "x", "กฎหมายทดสอบ")
	if len(secs) != 2 {
		t.Fatalf("len = %d, want 2", len(secs))
	}
	if secs[0].ID != "x-1" || secs[1].ID != "x-2" {
		t.Errorf("ids = %q, %q, want x-1, x-2", secs[0].ID, secs[1].ID)
	}
	if secs[0].Body != "เนื้อหา A" || secs[1].Body != "เนื้อหา B" {
		t.Errorf("bodies = %q, %q", secs[0].Body, secs[1].Body)
	}
	if secs[0].BookID != "x" {
		t.Errorf("book id = %q", secs[0].BookID)
	}
}

func TestParse_ThaiNumeralID(t *testing.T) {
	secs := Parse("มาตรา ๒๘๕/๑ ข้อความ", "crim", "ประมวลกฎหมายอาญา")
	if len(secs) != 1 {
		t.Fatalf("len = %d, want 1", len(secs))
	}
	if secs[0].ID != "crim-285-1" {
		t.Errorf("id = %q, want crim-285-1", secs[0].ID)
	}
	if secs[0].Number != "๒๘๕/๑" {
		t.Errorf("number = %q, want native script preserved", secs[0].Number)
	}
}

func TestParse_OrdinalSuffix(t *testing.T) {
	secs := Parse("มาตรา 30 ทวิ ผู้ใดกระทำความผิด", "x", "b")
	if len(secs) != 1 {
		t.Fatalf("len = %d, want 1", len(secs))
	}
	if secs[0].Number != "30 ทวิ" {
		t.Errorf("number = %q, want %q", secs[0].Number, "30 ทวิ")
	}
	if secs[0].Body != "ผู้ใดกระทำความผิด" {
		t.Errorf("body = %q, suffix should not leak into body", secs[0].Body)
	}
	if secs[0].ID != "x-30-ทวิ" {
		t.Errorf("id = %q", secs[0].ID)
	}
}

func TestParse_CategoryHierarchy(t *testing.T) {
	raw := `ภาค 1
บทบัญญัติทั่วไป
ลักษณะ 1 หลักทั่วไป
หมวด 2
การใช้กฎหมายอาญา
มาตรา 2 เนื้อหา`
	secs := Parse(raw, "crim", "ประมวลกฎหมายอาญา")
	if len(secs) != 1 {
		t.Fatalf("len = %d, want 1", len(secs))
	}
	want := "ประมวลกฎหมายอาญา > ภาค 1 บทบัญญัติทั่วไป > ลักษณะ 1 หลักทั่วไป > หมวด 2 การใช้กฎหมายอาญา"
	if secs[0].Category != want {
		t.Errorf("category = %q\nwant       %q", secs[0].Category, want)
	}
}

func TestParse_HigherHeadingResetsDeeperLevels(t *testing.T) {
	raw := `ภาค 1 ทั่วไป
หมวด 1 หนึ่ง
มาตรา 1 ก
ภาค 2 เฉพาะ
มาตรา 2 ข`
	secs := Parse(raw, "x", "b")
	if len(secs) != 2 {
		t.Fatalf("len = %d, want 2", len(secs))
	}
	if secs[1].Category != "b > ภาค 2 เฉพาะ" {
		t.Errorf("category = %q, chapter should have been reset", secs[1].Category)
	}
}

func TestParse_MultilineBodyPreservesLineBreaks(t *testing.T) {
	raw := "มาตรา 5 วรรคแรก\nวรรคสอง\nวรรคสาม"
	secs := Parse(raw, "x", "b")
	if len(secs) != 1 {
		t.Fatalf("len = %d", len(secs))
	}
	if secs[0].Body != "วรรคแรก\nวรรคสอง\nวรรคสาม" {
		t.Errorf("body = %q", secs[0].Body)
	}
}

func TestParse_SkipsNoise(t *testing.T) {
	raw := "มาตรา 1 เนื้อหา\n\n== หน้า 2 ==\n[12]\nต่อเนื่อง"
	secs := Parse(raw, "x", "b")
	if len(secs) != 1 {
		t.Fatalf("len = %d", len(secs))
	}
	if secs[0].Body != "เนื้อหา\nต่อเนื่อง" {
		t.Errorf("body = %q, separators and footnote lines should be skipped", secs[0].Body)
	}
}

func TestParse_StripsInlineFootnotes(t *testing.T) {
	secs := Parse("มาตรา 1 ข้อความ[1] เพิ่มเติม[120]", "x", "b")
	if len(secs) != 1 {
		t.Fatalf("len = %d", len(secs))
	}
	if secs[0].Body != "ข้อความ เพิ่มเติม" {
		t.Errorf("body = %q", secs[0].Body)
	}
}

func TestParse_DropsEmptyBody(t *testing.T) {
	// The second section's body is a footnote marker only, so after
	// cleaning it is empty and must not be emitted.
	raw := "มาตรา 1 จริง\nมาตรา 2 [3]\nมาตรา 3 อีก"
	secs := Parse(raw, "x", "b")
	if len(secs) != 2 {
		t.Fatalf("len = %d, want 2", len(secs))
	}
	if secs[0].ID != "x-1" || secs[1].ID != "x-3" {
		t.Errorf("ids = %q, %q", secs[0].ID, secs[1].ID)
	}
}

func TestParse_ContentBeforeFirstSectionIgnored(t *testing.T) {
	raw := "คำปรารภ\nข้อความนำ\nมาตรา 1 เนื้อหา"
	secs := Parse(raw, "x", "b")
	if len(secs) != 1 || secs[0].Body != "เนื้อหา" {
		t.Fatalf("secs = %+v", secs)
	}
}

func TestParse_Deterministic(t *testing.T) {
	raw := "ภาค 1 ทั่วไป\nมาตรา 1 ก\nมาตรา ๒ ทวิ ข\nมาตรา 3 ค"
	a := Parse(raw, "x", "b")
	b := Parse(raw, "x", "b")
	if !reflect.DeepEqual(a, b) {
		t.Error("re-parsing identical text should be byte-identical")
	}
}

func TestSectionID(t *testing.T) {
	cases := []struct {
		book, number, want string
	}{
		{"crim", "112", "crim-112"},
		{"crim", "๑๑๒", "crim-112"},
		{"civil", "285/1", "civil-285-1"},
		{"x", "30 ทวิ", "x-30-ทวิ"},
	}
	for _, tc := range cases {
		if got := SectionID(tc.book, tc.number); got != tc.want {
			t.Errorf("SectionID(%q, %q) = %q, want %q", tc.book, tc.number, got, tc.want)
		}
	}
}
