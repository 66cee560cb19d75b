package mcpserver

// CorpusFormatContract describes the raw statute text format the parser
// turns into sections, for LLM consumers that edit corpus source files.
const CorpusFormatContract = `# Matra Corpus Source Format

Each statute book is one UTF-8 plain text file (` + "`" + `<book-id>.txt` + "`" + `) in the
corpus directory. The parser walks it line by line and emits sections.

## Structure

` + "```" + `text
ภาค ๑
บทบัญญัติทั่วไป

ลักษณะ ๑
บทบัญญัติที่ใช้แก่ความผิดทั่วไป

หมวด ๑
บทนิยาม

มาตรา ๑ ประมวลกฎหมายนี้ให้เรียกว่า...

มาตรา ๑/๑ ข้อความของมาตราแทรก...

มาตรา ๓๐ ทวิ ข้อความของมาตราเพิ่มเติม...
` + "```" + `

## Rules

1. **Section marker.** A line starting with ` + "`" + `มาตรา` + "`" + ` followed by a number
   begins a new section. The text after the number on the same line, plus
   every following line until the next heading or section, is the body.
2. **Numbers** may use Thai (` + "`" + `๑๑๒` + "`" + `) or Arabic (` + "`" + `112` + "`" + `) digits, a
   sub-number after a slash (` + "`" + `๒๘๕/๑` + "`" + `), and an ordinal suffix
   (` + "`" + `ทวิ` + "`" + `, ` + "`" + `ตรี` + "`" + `, ` + "`" + `จัตวา` + "`" + `, ...). Digits are normalized to Arabic in
   the section ID; the suffix is kept in the displayed number.
3. **Headings.** Lines starting with ` + "`" + `ภาค` + "`" + `, ` + "`" + `บรรพ` + "`" + `, ` + "`" + `ลักษณะ` + "`" + `,
   ` + "`" + `หมวด` + "`" + `, or ` + "`" + `ส่วนที่` + "`" + ` open a hierarchy level; the next non-empty
   line is taken as that heading's description. The joined hierarchy becomes
   each section's category.
4. **Footnotes.** Bracketed markers like ` + "`" + `[1]` + "`" + ` are stripped from bodies;
   lines that begin with such a marker are dropped entirely.
5. **Separators.** Lines of ` + "`" + `==` + "`" + ` are ignored.
6. **Empty sections** (a marker with no body text) are dropped.
`
