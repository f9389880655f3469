// Package filesystem reads text bodies from local files and watches a
// file for changes.
//
// Reader implements driven.TextSource. Watcher implements
// driven.FileWatcher using fsnotify on the file's directory, so that
// editors which save by replacing the file are still observed.
package filesystem
