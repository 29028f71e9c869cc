package dataset

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	csv := `text,intent,response
hello,greet,Hello! How can I help you today?
check my balance,check_balance,Please share your account number.
show balance,check_balance,Please share your account number.
`
	set, err := Parse(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if len(set.Records) != 3 {
		t.Fatalf("记录数错误: got %d, want 3", len(set.Records))
	}
	if set.Skipped != 0 {
		t.Errorf("不应有跳过行: got %d", set.Skipped)
	}
	if set.Records[0].Intent != "greet" || set.Records[0].Text != "hello" {
		t.Errorf("首行解析错误: %+v", set.Records[0])
	}
}

func TestParseHeaderAliases(t *testing.T) {
	// query/answer别名, 大小写不敏感, 列顺序打乱
	csv := `Answer,Intent,Query
Hi there!,greet,hi
`
	set, err := Parse(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	rec := set.Records[0]
	if rec.Text != "hi" || rec.Intent != "greet" || rec.Response != "Hi there!" {
		t.Errorf("别名列解析错误: %+v", rec)
	}
}

func TestParseAliasPriority(t *testing.T) {
	// text与query同时存在时, text优先
	csv := `query,text,intent
q-version,t-version,greet
`
	set, err := Parse(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if set.Records[0].Text != "t-version" {
		t.Errorf("应优先取text列: got %q", set.Records[0].Text)
	}
}

func TestParseSkipsBadRows(t *testing.T) {
	csv := `text,intent,response
hello,greet,Hi!
,greet,空问法应跳过
missing intent,,也应跳过
short
bye,goodbye,Goodbye!
`
	set, err := Parse(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if len(set.Records) != 2 {
		t.Fatalf("有效记录数错误: got %d, want 2", len(set.Records))
	}
	if set.Skipped != 3 {
		t.Errorf("跳过行数错误: got %d, want 3", set.Skipped)
	}
}

func TestParseMissingRequiredColumn(t *testing.T) {
	if _, err := Parse(strings.NewReader("foo,bar\n1,2\n")); err == nil {
		t.Error("缺少必需列时应报错")
	}
}

func TestParseNoValidRecords(t *testing.T) {
	if _, err := Parse(strings.NewReader("text,intent\n,\n")); err == nil {
		t.Error("无有效记录时应报错")
	}
}

func TestParseResponseColumnOptional(t *testing.T) {
	set, err := Parse(strings.NewReader("text,intent\nhi,greet\n"))
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if set.Records[0].Response != "" {
		t.Errorf("无回复列时Response应为空: got %q", set.Records[0].Response)
	}
}

func TestByIntent(t *testing.T) {
	csv := `text,intent,response
a,greet,Hello!
b,greet,Hello!
c,greet,Welcome!
d,goodbye,Bye!
e,check_balance,
`
	set, err := Parse(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}

	grouped := set.ByIntent()
	if got := grouped["greet"]; len(got) != 2 || got[0] != "Hello!" || got[1] != "Welcome!" {
		t.Errorf("greet聚合错误: %v", got)
	}
	if got := grouped["goodbye"]; len(got) != 1 {
		t.Errorf("goodbye聚合错误: %v", got)
	}
	if _, ok := grouped["check_balance"]; ok {
		t.Error("空回复不应出现在聚合结果中")
	}
}
