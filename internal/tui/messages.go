// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

type openedMsg struct {
	err error
}

type idleCheckMsg struct{}

type clearStatusMsg struct{}
