package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"cran-packages/internal/types"
)

func TestInstallArgsMinimal(t *testing.T) {
	recipe := types.Recipe{}
	got := InstallArgs(recipe, "/opt/r/lib", "/tmp/src")
	want := []string{"--vanilla", "CMD", "INSTALL", "--library=/opt/r/lib", "/tmp/src"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected args (-want +got):\n%s", diff)
	}
}

func TestInstallArgsWithConfigureArgsAndVars(t *testing.T) {
	recipe := types.Recipe{
		ConfigureArgs: []string{"--with-gdal", "--with-proj"},
		ConfigureVars: []string{"CFLAGS=-O2", "LDFLAGS=-lm"},
	}
	got := InstallArgs(recipe, "/opt/r/lib", "/tmp/src")
	want := []string{
		"--vanilla", "CMD", "INSTALL",
		"--configure-args=--with-gdal --with-proj",
		"--configure-vars=CFLAGS=-O2 LDFLAGS=-lm",
		"--library=/opt/r/lib", "/tmp/src",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected args (-want +got):\n%s", diff)
	}
}
