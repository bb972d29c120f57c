package mpegts

import "sort"

const pidPAT = 0x0000

// pmtPIDSet remembers which PIDs the PAT has told us carry PMT sections,
// so the pool knows which non-PAT PIDs also need section-boundary
// (rather than PES-boundary) reassembly. Everything else a teletext
// capture receives is either PAT/PMT or, once the PMT names it, the one
// teletext elementary PID — a handful of live PIDs at any moment, never
// the full multi-program fan-out a general-purpose tuner tracks.
type pmtPIDSet struct {
	pids map[uint16]bool
}

func newPMTPIDSet() *pmtPIDSet {
	return &pmtPIDSet{pids: make(map[uint16]bool)}
}

func (s *pmtPIDSet) add(pid uint16) {
	s.pids[pid] = true
}

func (s *pmtPIDSet) contains(pid uint16) bool {
	return s.pids[pid]
}

// pidBuffer reassembles one PID's packets into complete units: PSI
// sections for PAT/PMT PIDs, PES packets for everything else. It tracks
// continuity so a dropped or duplicated transport packet doesn't corrupt
// the unit being built.
type pidBuffer struct {
	pid      uint16
	buffered []*Packet
	pmtPIDs  *pmtPIDSet
}

func newPIDBuffer(pid uint16, pmtPIDs *pmtPIDSet) *pidBuffer {
	return &pidBuffer{pid: pid, pmtPIDs: pmtPIDs}
}

// add folds one transport packet into the buffer, returning a completed
// set of packets when add either found a PSI section boundary or an
// unrelated packet arrived carrying payload_unit_start_indicator.
func (b *pidBuffer) add(p *Packet) []*Packet {
	if p.Header.TransportErrorIndicator {
		b.buffered = nil
		return nil
	}
	if !p.Header.HasPayload {
		return nil
	}

	if gap := b.continuityGap(p); gap == ccDuplicate {
		return nil
	} else if gap == ccDiscontinuous {
		b.buffered = nil
	}

	var done []*Packet
	if p.Header.PayloadUnitStartIndicator && len(b.buffered) > 0 {
		done, b.buffered = b.buffered, nil
	}

	b.buffered = append(b.buffered, p)

	if done == nil && b.isPSI() && isPSIComplete(b.buffered) {
		done, b.buffered = b.buffered, nil
	}
	return done
}

type continuityResult int

const (
	ccOK continuityResult = iota
	ccDuplicate
	ccDiscontinuous
)

// continuityGap compares p's continuity counter against the last
// buffered packet, distinguishing an expected signaled discontinuity, a
// retransmitted duplicate, and an unsignaled drop that invalidates
// whatever was buffered so far.
func (b *pidBuffer) continuityGap(p *Packet) continuityResult {
	if len(b.buffered) == 0 || p.Header.DiscontinuityIndicator {
		return ccOK
	}
	prev := b.buffered[len(b.buffered)-1].Header.ContinuityCounter
	switch p.Header.ContinuityCounter {
	case (prev + 1) & 0x0F:
		return ccOK
	case prev:
		return ccDuplicate
	default:
		return ccDiscontinuous
	}
}

func (b *pidBuffer) isPSI() bool {
	return b.pid == pidPAT || b.pmtPIDs.contains(b.pid)
}

func (b *pidBuffer) flush() []*Packet {
	if len(b.buffered) == 0 {
		return nil
	}
	done := b.buffered
	b.buffered = nil
	return done
}

// isPSIComplete checks whether the accumulated payloads contain a complete PSI section.
func isPSIComplete(packets []*Packet) bool {
	var payload []byte
	for _, p := range packets {
		payload = append(payload, p.Payload...)
	}
	if len(payload) < 1 {
		return false
	}

	pointerField := int(payload[0])
	offset := 1 + pointerField
	if offset >= len(payload) {
		return false
	}

	// Walk sections.
	for offset < len(payload) {
		if payload[offset] == 0xFF {
			return true // stuffing bytes, section is complete
		}
		if offset+3 > len(payload) {
			return false
		}
		// section_syntax_indicator must be 1 for PAT/PMT.
		// Zero-padding bytes will have this bit clear.
		if payload[offset+1]&0x80 == 0 {
			return true // not a valid section header, treat as padding
		}
		sectionLength := int(payload[offset+1]&0x0F)<<8 | int(payload[offset+2])
		needed := 3 + sectionLength
		if offset+needed > len(payload) {
			return false
		}
		offset += needed
	}
	return true
}

// pidBuffers owns one pidBuffer per PID seen so far, created lazily on
// first sight. It never prunes an idle PID's buffer: the stream this
// package reads carries at most PAT, one PMT, and one teletext elementary
// PID, so the live set stays tiny for the package's whole run.
type pidBuffers struct {
	byPID   map[uint16]*pidBuffer
	pmtPIDs *pmtPIDSet
}

func newPIDBuffers(pmtPIDs *pmtPIDSet) *pidBuffers {
	return &pidBuffers{byPID: make(map[uint16]*pidBuffer), pmtPIDs: pmtPIDs}
}

func (bs *pidBuffers) add(p *Packet) []*Packet {
	pid := p.Header.PID
	b, ok := bs.byPID[pid]
	if !ok {
		b = newPIDBuffer(pid, bs.pmtPIDs)
		bs.byPID[pid] = b
	}
	return b.add(p)
}

// drain flushes every PID's buffer in ascending numeric PID order, so the
// PAT (PID 0) comes first; PMT and elementary-stream PIDs follow by PID
// value alone, with no ordering between them by role.
func (bs *pidBuffers) drain() [][]*Packet {
	pids := make([]int, 0, len(bs.byPID))
	for pid := range bs.byPID {
		pids = append(pids, int(pid))
	}
	sort.Ints(pids)

	var all [][]*Packet
	for _, pid := range pids {
		if packets := bs.byPID[uint16(pid)].flush(); packets != nil {
			all = append(all, packets)
		}
	}
	return all
}
