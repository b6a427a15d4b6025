package simpleinput

import (
	"io"
	"testing"
)

type sliceSyllableReader struct {
	entries [][2]string
	index   int
}

func (r *sliceSyllableReader) Next() (string, string, error) {
	if r.index >= len(r.entries) {
		return "", "", io.EOF
	}
	entry := r.entries[r.index]
	r.index++
	return entry[0], entry[1], nil
}

// sampleEntries is a small excerpt of a frequency ordered notone table.
var sampleEntries = [][2]string{
	{"a", "阿啊呵腌嗄吖锕"},
	{"ai", "爱埃挨哎唉哀皑癌蔼矮艾碍隘"},
	{"an", "安按暗岸案俺氨胺鞍谙埯揞犴庵桉铵鹌黯"},
	{"ba", "把八吧巴拔霸罢爸坝芭扒叭靶疤笆"},
	{"bai", "百白摆败拜柏佰掰"},
	{"guo", "国过果锅郭裹帼蝈聒馘掴埚虢呙崞猓椁蜾"},
	{"hao", "好号毫豪耗浩郝嚎壕蒿薅嗥濠灏昊皓颢蚝"},
	{"ni", "你呢尼泥逆倪匿拟腻妮霓昵溺旎睨鲵坭猊怩铌"},
	{"nv", "女钕恧衄"},
	{"xi", "系西席息希习吸喜细析戏洗悉锡溪惜稀袭夕"},
	{"xian", "现先县见线限显险献鲜洗宪纤陷闲贤仙衔掀咸嫌"},
	{"zhong", "中种重众终钟忠衷肿仲锺踵盅冢舯螽"},
	{"zhuang", "装状庄壮撞妆幢桩奘僮戆"},
}

var backends = []Backend{BackendDAT, BackendTrie}

func mustLoadSample(t *testing.T, backend Backend) *Dictionary {
	t.Helper()
	return mustLoadEntries(t, backend, sampleEntries...)
}

func mustLoadEntries(t *testing.T, backend Backend, entries ...[2]string) *Dictionary {
	t.Helper()
	dict, err := LoadSyllables("test", &sliceSyllableReader{entries: entries}, WithBackend(backend))
	if err != nil {
		t.Fatalf("cannot load test dictionary: %v", err)
	}
	return dict
}

func mustNewSession(t *testing.T, backend Backend) *Session {
	t.Helper()
	s, err := NewSession(mustLoadSample(t, backend))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

// typeKeys feeds a string of letters/digits to the session and returns the
// last snapshot.
func typeKeys(s *Session, keys string) *Snapshot {
	var snap *Snapshot
	for _, k := range keys {
		snap = s.HandleKey(int(k))
	}
	return snap
}
