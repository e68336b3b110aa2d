package render_test

import (
	"os"

	"github.com/vvka-141/fileman/internal/files/filesystem"
	"github.com/vvka-141/fileman/internal/files/walker"
	"github.com/vvka-141/fileman/internal/render"
)

func exampleWorld() *render.Renderer {
	mfs := filesystem.NewMemoryFileSystem("/world")
	mfs.AddDir("europe/france")
	mfs.AddDir("usa")
	return render.New(walker.NewWalkerWithFS(mfs, nil))
}

func ExampleRenderer_Tree() {
	_ = exampleWorld().Tree(os.Stdout, "/world")
	// Output:
	// /world
	// ├── europe
	// │   └── france
	// └── usa
}

func ExampleRenderer_Dir() {
	_ = exampleWorld().Dir(os.Stdout, "/world")
	// Output:
	// /world
	//     europe
	//         france
	//     usa
}
