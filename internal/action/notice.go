// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package action

// NoticeKind classifies a transient notification.
type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeSuccess
	NoticeWarning
	NoticeError
)

// Notice is the single notification contract every operation outcome is
// reported through. The UI renders these as toasts; the CLI prints them.
type Notice struct {
	Title   string
	Message string
	Kind    NoticeKind
}

func infoNotice(title, message string) Notice {
	return Notice{Title: title, Message: message, Kind: NoticeInfo}
}

func successNotice(title, message string) Notice {
	return Notice{Title: title, Message: message, Kind: NoticeSuccess}
}

func errorNotice(title, message string) Notice {
	return Notice{Title: title, Message: message, Kind: NoticeError}
}
