/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
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

// Package util provides filesystem path resolution used by cmd/bbbench to
// locate its config.toml (and, optionally, a results CSV) without
// requiring an absolute path on the command line.
package util

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

const verbose = false

// candidateDirs returns, in priority order, the directories ResolveFile
// and ResolveFolder try a relative path against: the working directory,
// the directory holding the running executable, and the user's home
// directory. A directory whose os call failed is simply omitted rather
// than aborting the search.
func candidateDirs() []string {
	var dirs []string
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}
	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Dir(exe))
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, home)
	}
	return dirs
}

// ResolveFile resolves a path to a file, trying a fixed set of places in
// turn, and returns an absolute path to it. Path must name a file or a
// not-found error is returned (wrapping the original, uncleaned path so
// callers can use it as a creation candidate).
//
// Order of resolution:
//   - if path is absolute, it is used as-is (an error is still returned
//     if nothing exists there)
//   - otherwise, relative to the working directory, then relative to the
//     running executable's directory, then relative to the user's home
//     directory
func ResolveFile(file string) (string, error) {
	notFound := fmt.Errorf("file could not be found: %s", file)

	clean := filepath.Clean(file)
	if verbose {
		log.Println("resolving file", clean)
	}

	if filepath.IsAbs(clean) {
		if fileExists(clean) {
			return clean, nil
		}
		return clean, notFound
	}

	for _, dir := range candidateDirs() {
		candidate := filepath.Join(dir, clean)
		if fileExists(candidate) {
			if verbose {
				log.Println("found file at", candidate)
			}
			return filepath.Clean(candidate), nil
		}
	}

	if verbose {
		log.Println("file not found", clean)
	}
	return file, notFound
}

// ResolveFolder is resolving a path to a folder and try to find the folder
// in a specific set of places and then will return an absolute path to
// it.
// Path needs to be a folder or a not found error will be returned.
// The folder will not be created.
// The order will be check like this:
//  - if path is absolute it will return a os specific path and
//    an error if the file does not exist
// 	- if path is not absolute we will try first
// 	  - relative to working directory
//	  - relative to executable
//    - relative to user home directory
func ResolveFolder(folder string) (string, error) {
	notFound := fmt.Errorf("folder could not be found: %s", folder)

	clean := filepath.Clean(folder)
	if verbose {
		log.Println("resolving folder", clean)
	}

	if filepath.IsAbs(clean) {
		if folderExists(clean) {
			return clean, nil
		}
		return clean, notFound
	}

	for _, dir := range candidateDirs() {
		candidate := filepath.Join(dir, clean)
		if folderExists(candidate) {
			if verbose {
				log.Println("found folder at", candidate)
			}
			return filepath.Clean(candidate), nil
		}
	}

	if verbose {
		log.Println("folder not found", clean)
	}
	return folder, notFound
}

// ResolveCreateFolder is resolving a path to a folder and try to find the
// folder in a specific set of places.
// If no folder can be found it will try to create a folder from the last
// part of the given folder path in the working directory.
// If a folder can't be created in the working directory it will be created
// in the os's temp directory.
// The order will be check like this:
//  - if path is absolute it will test if the folder exists or try to create
//    the folder there
// 	- if path is not absolute we look for a folder named after its last
// 	  element in the working directory. If not found we try to create it there
//  - last we create the folder in temp
func ResolveCreateFolder(folderPath string) (string, error) {
	clean := filepath.Clean(folderPath)

	if filepath.IsAbs(clean) {
		if folderExists(clean) {
			return clean, nil
		}
		return clean, os.Mkdir(clean, 0755)
	}

	// try working directory
	if wd, err := os.Getwd(); err == nil {
		candidate := filepath.Join(wd, filepath.Base(clean))
		if folderExists(candidate) {
			return candidate, nil
		}
		if err := os.Mkdir(candidate, 0755); err == nil {
			return candidate, nil
		}
	}

	// fall back to the OS temp directory
	candidate := filepath.Join(os.TempDir(), filepath.Base(clean))
	if folderExists(candidate) {
		return candidate, nil
	}
	return candidate, os.Mkdir(candidate, 0755)
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

func folderExists(foldername string) bool {
	info, err := os.Stat(foldername)
	if err != nil {
		return false
	}
	return info.Mode().IsDir()
}
