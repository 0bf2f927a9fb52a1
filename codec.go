package ssss

import "fmt"

// ShareOverhead is the number of metadata bytes a serialized share carries
// in front of the field element: one byte of threshold, one byte of index.
const ShareOverhead = 2

// MarshalBinary serializes the share as [threshold, index, y...] with y in
// big-endian order.
func (s *Share) MarshalBinary() ([]byte, error) {
	if s.Index == 0 {
		return nil, fmt.Errorf("%w: share index 0", ErrInvalidShare)
	}
	out := make([]byte, ShareOverhead+len(s.Value))
	out[0] = s.Threshold
	out[1] = s.Index
	copy(out[ShareOverhead:], s.Value)
	return out, nil
}

// UnmarshalBinary parses the serialized form produced by MarshalBinary.
// The payload length is whatever remains after the two metadata bytes.
func (s *Share) UnmarshalBinary(data []byte) error {
	if len(data) < ShareOverhead+1 {
		return fmt.Errorf("%w: %d bytes is too short for a share", ErrInvalidShare, len(data))
	}
	s.Threshold = data[0]
	s.Index = data[1]
	s.Value = append([]byte(nil), data[ShareOverhead:]...)
	return nil
}
