package export

import (
	"io"
	"log"
	"testing"

	kdb "github.com/AliRehmantechndev/EdgeMind-backend/pkg/db"
	"github.com/AliRehmantechndev/EdgeMind-backend/pkg/utils/cmp"
)

func anno(imageId string, label string) kdb.Annotation {
	return kdb.Annotation{ImageId: imageId, Label: label}
}

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestShouldExpand(t *testing.T) {
	for name, testcase := range map[string]struct {
		uniqueIds int
		fileCount int
		want      bool
	}{
		"a single image id with twice as many files triggers":      {1, 2, true},
		"a single image id with one file does not trigger":         {1, 1, false},
		"two image ids with four files trigger":                    {2, 4, true},
		"two image ids with three files do not trigger":            {2, 3, false},
		"three image ids never trigger":                            {3, 100, false},
		"no files never trigger even with no unique ids":           {1, 0, false},
		"the file count bound is inclusive":                        {2, 4, true},
		"one id and exactly double the files is still the minimum": {1, 2, true},
	} {
		t.Run(name, func(t *testing.T) {
			if got := shouldExpand(testcase.uniqueIds, testcase.fileCount); got != testcase.want {
				t.Errorf(
					"shouldExpand(%d, %d) = %v, want %v",
					testcase.uniqueIds, testcase.fileCount, got, testcase.want,
				)
			}
		})
	}
}

func TestMatchFile(t *testing.T) {
	files := []string{"Cat.jpg", "dog.png", "bird.jpeg"}

	t.Run("an exact name wins before case folding", func(t *testing.T) {
		got, ok := matchFile("dog.png", files)
		if !ok || got != "dog.png" {
			t.Errorf("matchFile = (%q, %v), want (dog.png, true)", got, ok)
		}
	})

	t.Run("a name differing only by case still matches", func(t *testing.T) {
		got, ok := matchFile("cat.jpg", files)
		if !ok || got != "Cat.jpg" {
			t.Errorf("matchFile = (%q, %v), want (Cat.jpg, true)", got, ok)
		}
	})

	t.Run("an exact match is preferred over a case-insensitive one", func(t *testing.T) {
		both := []string{"IMG.jpg", "img.jpg"}
		got, ok := matchFile("img.jpg", both)
		if !ok || got != "img.jpg" {
			t.Errorf("matchFile = (%q, %v), want (img.jpg, true)", got, ok)
		}
	})

	t.Run("a substring never matches", func(t *testing.T) {
		if got, ok := matchFile("dog", files); ok {
			t.Errorf("matchFile matched %q for a bare prefix", got)
		}
	})

	t.Run("an unknown name does not match", func(t *testing.T) {
		if got, ok := matchFile("fish.jpg", files); ok {
			t.Errorf("matchFile matched %q for an unknown name", got)
		}
	})
}

func TestReconcile_NormalPath(t *testing.T) {
	t.Run("matched annotations group by file, unmatched ones drop", func(t *testing.T) {
		annotations := []kdb.Annotation{
			anno("a.jpg", "cat"),
			anno("b.jpg", "dog"),
			anno("a.jpg", "cat"),
			anno("ghost.jpg", "cat"),
		}
		files := []string{"a.jpg", "b.jpg", "c.jpg"}

		assigned, unresolved := reconcile(annotations, files, quietLogger())

		if assigned.Len() != 2 {
			t.Errorf("assigned %d files, want 2", assigned.Len())
		}
		if got := assigned.Annotations("a.jpg"); len(got) != 2 {
			t.Errorf("a.jpg got %d annotations, want 2", len(got))
		}
		if got := assigned.Annotations("b.jpg"); len(got) != 1 {
			t.Errorf("b.jpg got %d annotations, want 1", len(got))
		}
		if !cmp.SliceContentEq(unresolved, []string{"ghost.jpg"}) {
			t.Errorf("unresolved = %v, want [ghost.jpg]", unresolved)
		}
	})

	t.Run("nothing matching leaves the map empty and all ids unresolved", func(t *testing.T) {
		annotations := []kdb.Annotation{
			anno("x.jpg", "cat"),
			anno("y.jpg", "dog"),
			anno("z.jpg", "cat"),
		}
		files := []string{"a.jpg", "b.jpg", "c.jpg", "d.jpg", "e.jpg", "f.jpg"}

		assigned, unresolved := reconcile(annotations, files, quietLogger())

		if assigned.Len() != 0 {
			t.Errorf("assigned %d files, want 0", assigned.Len())
		}
		if !cmp.SliceContentEq(unresolved, []string{"x.jpg", "y.jpg", "z.jpg"}) {
			t.Errorf("unresolved = %v", unresolved)
		}
	})
}

func TestReconcile_ExpandPath(t *testing.T) {
	t.Run("one synthetic id spreads over all files in chunks", func(t *testing.T) {
		annotations := []kdb.Annotation{}
		for range [10]struct{}{} {
			annotations = append(annotations, anno("frame", "cat"))
		}
		files := []string{"b.jpg", "a.jpg"} // deliberately unsorted

		assigned, unresolved := reconcile(annotations, files, quietLogger())

		if assigned.Len() != 2 {
			t.Fatalf("assigned %d files, want 2", assigned.Len())
		}
		// chunks follow lexicographic file order
		if got := assigned.Annotations("a.jpg"); len(got) != 5 {
			t.Errorf("a.jpg got %d annotations, want 5", len(got))
		}
		if got := assigned.Annotations("b.jpg"); len(got) != 5 {
			t.Errorf("b.jpg got %d annotations, want 5", len(got))
		}
		if len(unresolved) != 0 {
			t.Errorf("unresolved = %v, want none", unresolved)
		}
	})

	t.Run("a remainder chunk lands on the last file", func(t *testing.T) {
		annotations := []kdb.Annotation{
			anno("frame", "a"), anno("frame", "b"), anno("frame", "c"),
			anno("frame", "d"), anno("frame", "e"),
		}
		files := []string{"x.jpg", "y.jpg"}

		assigned, _ := reconcile(annotations, files, quietLogger())

		// ceil(5/2) = 3 per chunk: 3 on the first file, 2 on the second
		if got := assigned.Annotations("x.jpg"); len(got) != 3 {
			t.Errorf("x.jpg got %d annotations, want 3", len(got))
		}
		if got := assigned.Annotations("y.jpg"); len(got) != 2 {
			t.Errorf("y.jpg got %d annotations, want 2", len(got))
		}
	})

	t.Run("more ids than files caps the chunk count at the file count", func(t *testing.T) {
		annotations := []kdb.Annotation{
			anno("p", "a"), anno("q", "b"), anno("p", "c"), anno("q", "d"),
		}
		files := []string{"only.jpg", "other.jpg", "third.jpg", "fourth.jpg"}

		assigned, _ := reconcile(annotations, files, quietLogger())

		// 2 unique ids, 4 files: expand applies, chunk size ceil(4/4)=1
		if assigned.Len() != 4 {
			t.Errorf("assigned %d files, want 4", assigned.Len())
		}
		total := 0
		for _, f := range assigned.Files() {
			total += len(assigned.Annotations(f))
		}
		if total != len(annotations) {
			t.Errorf("assigned %d annotations in total, want %d", total, len(annotations))
		}
	})
}

func TestClassMapping(t *testing.T) {
	classes := []kdb.AnnotationClass{
		{Name: "cat"}, {Name: "dog"}, {Name: "cat"}, {Name: "bird"},
	}
	mapping := newClassMapping(classes)

	t.Run("indexes follow first occurrence in class order", func(t *testing.T) {
		for label, want := range map[string]int{"cat": 0, "dog": 1, "bird": 3} {
			if got := mapping.IndexOf(label); got != want {
				t.Errorf("IndexOf(%q) = %d, want %d", label, got, want)
			}
		}
	})

	t.Run("an unknown label falls back to index zero", func(t *testing.T) {
		if got := mapping.IndexOf("unicorn"); got != 0 {
			t.Errorf("IndexOf(unicorn) = %d, want 0", got)
		}
	})
}

func TestLabelContent(t *testing.T) {
	mapping := newClassMapping([]kdb.AnnotationClass{{Name: "cat"}, {Name: "dog"}})

	t.Run("boxes render center-relative with six decimals", func(t *testing.T) {
		annotations := []kdb.Annotation{
			{Label: "cat", Geometry: kdb.BoundingBox{X: 10, Y: 20, Width: 100, Height: 50}},
		}
		want := "0 0.093750 0.035156 0.156250 0.078125"
		if got := labelContent(annotations, mapping, 640, 640); got != want {
			t.Errorf("labelContent = %q, want %q", got, want)
		}
	})

	t.Run("each annotation is one line", func(t *testing.T) {
		annotations := []kdb.Annotation{
			{Label: "cat", Geometry: kdb.BoundingBox{X: 0, Y: 0, Width: 640, Height: 640}},
			{Label: "dog", Geometry: kdb.BoundingBox{X: 320, Y: 320, Width: 320, Height: 320}},
		}
		want := "0 0.500000 0.500000 1.000000 1.000000\n1 0.750000 0.750000 0.500000 0.500000"
		if got := labelContent(annotations, mapping, 640, 640); got != want {
			t.Errorf("labelContent = %q, want %q", got, want)
		}
	})
}

func TestLabelFilename(t *testing.T) {
	for in, want := range map[string]string{
		"photo.jpg":      "photo.txt",
		"photo.test.png": "photo.test.txt",
		"noext":          "noext.txt",
		".hidden":        ".hidden.txt",
	} {
		if got := labelFilename(in); got != want {
			t.Errorf("labelFilename(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestWithDefaults(t *testing.T) {
	t.Run("zero values are filled", func(t *testing.T) {
		got := withDefaults(kdb.TrainingConfig{})
		want := kdb.TrainingConfig{
			Epochs:            100,
			BatchSize:         16,
			ImgSize:           640,
			LearningRate:      0.001,
			ModelType:         "yolov8recommended",
			DatasetSplitRatio: "80/20",
		}
		if got != want {
			t.Errorf("withDefaults = %+v, want %+v", got, want)
		}
	})

	t.Run("explicit values survive", func(t *testing.T) {
		in := kdb.TrainingConfig{
			Epochs: 5, BatchSize: 2, ImgSize: 320,
			LearningRate: 0.1, ModelType: "custom", DatasetSplitRatio: "90/10",
		}
		if got := withDefaults(in); got != in {
			t.Errorf("withDefaults = %+v, want %+v", got, in)
		}
	})
}
