/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package util

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFileAbsolute(t *testing.T) {
	dir, err := ioutil.TempDir("", "bbattack-pathresolv")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	f := filepath.Join(dir, "present.toml")
	require.NoError(t, ioutil.WriteFile(f, []byte("x=1"), 0644))

	got, err := ResolveFile(f)
	assert.NoError(t, err)
	assert.Equal(t, filepath.Clean(f), got)

	_, err = ResolveFile(filepath.Join(dir, "absent.toml"))
	assert.Error(t, err)
}

func TestResolveFileRelativeToWorkingDirectory(t *testing.T) {
	dir, err := ioutil.TempDir("", "bbattack-pathresolv")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "config.toml"), []byte("x=1"), 0644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	got, err := ResolveFile("config.toml")
	assert.NoError(t, err)
	assert.Equal(t, filepath.Clean(filepath.Join(dir, "config.toml")), got)
}

func TestResolveFileNotFoundReturnsOriginalPath(t *testing.T) {
	const missing = "does-not-exist-anywhere.toml"
	got, err := ResolveFile(missing)
	require.Error(t, err)
	assert.Equal(t, missing, got)
}

func TestResolveFolder(t *testing.T) {
	dir, err := ioutil.TempDir("", "bbattack-pathresolv")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	sub := filepath.Join(dir, "subfolder")
	require.NoError(t, os.Mkdir(sub, 0755))

	got, err := ResolveFolder(sub)
	assert.NoError(t, err)
	assert.Equal(t, filepath.Clean(sub), got)

	_, err = ResolveFolder(filepath.Join(dir, "nope"))
	assert.Error(t, err)
}

func TestResolveCreateFolderCreatesUnderWorkingDirectory(t *testing.T) {
	dir, err := ioutil.TempDir("", "bbattack-pathresolv")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	created, err := ResolveCreateFolder("fresh-results")
	require.NoError(t, err)
	info, statErr := os.Stat(created)
	require.NoError(t, statErr)
	assert.True(t, info.IsDir())
}
