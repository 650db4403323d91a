// This file is part of vamiga.
//
// vamiga is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// vamiga is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with vamiga.  If not, see <https://www.gnu.org/licenses/>.

// Package hardware assembles the custom chips into one Amiga container and
// drives the run/pause/off state machine that paces them against wall-clock
// time: the worker loop, snapshotting, suspend/resume, and the host-facing
// message queue.
//
// Everything below this package runs single-threaded, driven by whichever
// goroutine calls into it; the only concurrency this package itself
// introduces is the one worker goroutine spawned by Run and the lock
// guarding the fields a host thread reads concurrently (Info, message
// queue, stable frame buffers).
package hardware
