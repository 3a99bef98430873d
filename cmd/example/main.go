package main

import (
	"fmt"
	"os"

	"github.com/aligator/fatnav"
	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
)

var (
	dir  = flag.String("cd", "", "change into this directory before listing")
	cat  = flag.String("cat", "", "print the content of this file of the listed directory")
	walk = flag.Bool("walk", false, "walk the whole volume instead of listing one directory")
)

// main is just an example command to play with fatnav.
func main() {
	flag.Parse()
	if flag.NArg() < 1 {
		fmt.Println("Please provide an image filename.")
		os.Exit(1)
	}

	image, err := afero.ReadFile(afero.NewOsFs(), flag.Arg(0))
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if *walk {
		walkVolume(image)
		return
	}

	nav, err := fatnav.New(image)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	fmt.Printf("Opened volume '%v'\n\n", nav.Label())

	if *dir != "" {
		if _, err := nav.ChangeDirectory(*dir); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	}

	for _, entry := range nav.List() {
		fmt.Printf("%-12v %8v  cluster %5v  %v\n",
			entry.DisplayName(), entry.Size, entry.StartCluster, entry.Attributes)
	}

	if *cat != "" {
		content, err := nav.OpenFile(*cat)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Printf("\nContent of %v:\n\n", content.DisplayName())
		os.Stdout.Write(content.Bytes)
	}
}

// walkVolume lists every file of the image through the afero layer.
func walkVolume(image []byte) {
	fatFs, err := fatnav.NewFs(image)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	err = afero.Walk(fatFs, "", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			fmt.Println(err)
			return err
		}
		fmt.Println(path, info.IsDir(), info.Size())
		return nil
	})
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
