package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"github.com/avivilloz/commonutils/internal/fsutil"
)

func fsCommands(st *state) []*cobra.Command {
	return []*cobra.Command{
		existsCmd(),
		lsCmd(),
		catCmd(),
		headCmd(),
		&cobra.Command{
			Use:   "mkdir <path>",
			Short: "Create a directory and its parents",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				return st.ops.CreateDir(args[0])
			},
		},
		&cobra.Command{
			Use:   "rmdir <path>",
			Short: "Remove a directory tree",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				return st.ops.RemoveDir(args[0])
			},
		},
		&cobra.Command{
			Use:   "cp <src> <dst-dir>",
			Short: "Copy a file or directory into a destination directory",
			Args:  cobra.ExactArgs(2),
			RunE: func(_ *cobra.Command, args []string) error {
				return st.ops.CopyFile(args[0], args[1])
			},
		},
		&cobra.Command{
			Use:   "mv <src> <dst>",
			Short: "Move or rename a file or directory",
			Args:  cobra.ExactArgs(2),
			RunE: func(_ *cobra.Command, args []string) error {
				return st.ops.MoveFile(args[0], args[1])
			},
		},
	}
}

func existsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exists <path>",
		Short: "Print whether a path exists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), fsutil.PathExists(args[0]))
			return nil
		},
	}
}

func lsCmd() *cobra.Command {
	var files, dirs, names, sorted bool

	c := &cobra.Command{
		Use:   "ls <dir>",
		Short: "List the entries of a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if files && dirs {
				return errors.New("--files and --dirs are mutually exclusive")
			}

			entries, err := lister(files, dirs, names, sorted)(args[0])
			if err != nil {
				return err
			}
			for _, e := range entries {
				fmt.Fprintln(cmd.OutOrStdout(), e)
			}
			return nil
		},
	}

	c.Flags().BoolVar(&files, "files", false, "only regular files")
	c.Flags().BoolVar(&dirs, "dirs", false, "only directories")
	c.Flags().BoolVar(&names, "names", false, "print base names instead of paths")
	c.Flags().BoolVar(&sorted, "sorted", false, "sort by path")
	return c
}

func lister(files, dirs, names, sorted bool) func(string) ([]string, error) {
	switch {
	case files && names && sorted:
		return fsutil.ListFileNamesSorted
	case files && names:
		return fsutil.ListFileNames
	case files && sorted:
		return fsutil.ListFilePathsSorted
	case files:
		return fsutil.ListFilePaths
	case dirs && names && sorted:
		return fsutil.ListDirNamesSorted
	case dirs && names:
		return fsutil.ListDirNames
	case dirs && sorted:
		return fsutil.ListDirPathsSorted
	case dirs:
		return fsutil.ListDirPaths
	}

	return func(dir string) ([]string, error) {
		paths, err := fsutil.ListSubpaths(dir)
		if err != nil {
			return nil, err
		}
		if sorted {
			slices.Sort(paths)
		}
		if names {
			for i, p := range paths {
				paths[i] = filepath.Base(p)
			}
		}
		return paths, nil
	}
}

func catCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cat <path>",
		Short: "Print a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := fsutil.ReadFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), content)
			return nil
		},
	}
}

func headCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "head <path>",
		Short: "Print the first line of a file, trimmed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := fsutil.ReadLine(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
			return nil
		},
	}
}
