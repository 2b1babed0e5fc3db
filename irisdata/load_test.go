// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package irisdata

import (
	"bytes"
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/aclements/go-gg/table"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/flatmap/irisviz/plotting"
)

func de(x, y interface{}) bool {
	return reflect.DeepEqual(x, y)
}

func equal(t1, t2 *table.Table) bool {
	if !de(t1.Columns(), t2.Columns()) {
		return false
	}
	for _, col := range t1.Columns() {
		if !de(t1.Column(col), t2.Column(col)) {
			return false
		}
	}
	return true
}

const smallCSV = `Species, SepalLength,SepalWidth,PetalLength,Cluster0,Cluster1,Cluster2
setosa,5.1,3.5,1.4,1,0,0
virginica,6.3,3.3,6,0,1,0
`

func TestRead(t *testing.T) {
	tab, err := Read(strings.NewReader(smallCSV))
	if err != nil {
		t.Fatal(err)
	}
	want := new(table.Builder).
		Add("Species", []string{"setosa", "virginica"}).
		Add("SepalLength", []float64{5.1, 6.3}).
		Add("SepalWidth", []float64{3.5, 3.3}).
		Add("PetalLength", []float64{1.4, 6}).
		Add("Cluster0", []int{1, 0}).
		Add("Cluster1", []int{0, 1}).
		Add("Cluster2", []int{0, 0}).
		Done()
	if !equal(tab, want) {
		var got, w bytes.Buffer
		table.Fprint(&got, tab)
		table.Fprint(&w, want)
		t.Fatalf("want:\n%sgot:\n%s", w.String(), got.String())
	}

	if _, err := Read(strings.NewReader("")); err != errNoHeader {
		t.Fatalf("empty input: want %v; got %v", errNoHeader, err)
	}
}

func TestOpenCompressed(t *testing.T) {
	dir, err := ioutil.TempDir("", "irisdata")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	plain, err := Read(strings.NewReader(smallCSV))
	if err != nil {
		t.Fatal(err)
	}

	var gz bytes.Buffer
	gw := gzip.NewWriter(&gz)
	gw.Write([]byte(smallCSV))
	if err := gw.Close(); err != nil {
		t.Fatal(err)
	}

	var zs bytes.Buffer
	zw, err := zstd.NewWriter(&zs)
	if err != nil {
		t.Fatal(err)
	}
	zw.Write([]byte(smallCSV))
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	for name, data := range map[string][]byte{
		"iris.csv":     []byte(smallCSV),
		"iris.csv.gz":  gz.Bytes(),
		"iris.csv.zst": zs.Bytes(),
	} {
		path := filepath.Join(dir, name)
		if err := ioutil.WriteFile(path, data, 0666); err != nil {
			t.Fatal(err)
		}
		tab, err := Open(path)
		if err != nil {
			t.Fatalf("Open(%s): %v", name, err)
		}
		if !equal(tab, plain) {
			t.Errorf("Open(%s) differs from plain CSV", name)
		}
	}

	if _, err := Open(filepath.Join(dir, "missing.csv")); !os.IsNotExist(err) {
		t.Errorf("Open of missing file: want not-exist error; got %v", err)
	}
	bad := filepath.Join(dir, "bad.csv.gz")
	ioutil.WriteFile(bad, []byte(smallCSV), 0666)
	if _, err := Open(bad); err == nil {
		t.Errorf("Open of corrupt gzip succeeded")
	}
}

func TestCheck(t *testing.T) {
	tab, err := Read(strings.NewReader(smallCSV))
	if err != nil {
		t.Fatal(err)
	}
	if err := Check(tab, plotting.Columns()...); err != nil {
		t.Fatalf("Check: %v", err)
	}
	err = Check(tab, "Species", "PetalWidth", "Variety")
	var mce *MissingColumnError
	if !errors.As(err, &mce) {
		t.Fatalf("want *MissingColumnError; got %v", err)
	}
	if want := []string{"PetalWidth", "Variety"}; !de(mce.Columns, want) {
		t.Fatalf("missing columns %v; want %v", mce.Columns, want)
	}
}

func TestTestdataScene(t *testing.T) {
	tab, err := Open("testdata/iris.csv")
	if err != nil {
		t.Fatal(err)
	}
	if n := tab.Len(); n != 13 {
		t.Fatalf("testdata has %d rows; want 13", n)
	}
	s, err := plotting.BuildScene(tab, "Species")
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Data) != 6 {
		t.Fatalf("scene has %d traces; want 6", len(s.Data))
	}
	sc := s.Data[2].(*plotting.Scatter3D)
	if sc.Name != "versicolor" || len(sc.X) != 4 {
		t.Fatalf("second group is %s with %d points; want versicolor with 4", sc.Name, len(sc.X))
	}
	if want := "Cluster0: 0<br>Cluster1: 0<br>Cluster2: 1"; sc.Text[0] != want {
		t.Fatalf("first versicolor hover text %q; want %q", sc.Text[0], want)
	}

	// Grouping by cluster membership also stays within the
	// palette.
	if _, err := plotting.BuildScene(tab, "Cluster1"); err != nil {
		t.Fatal(err)
	}
}
