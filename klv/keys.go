// Package klv's essence-key table: a single compile-time, closed list of
// SMPTE Universal Label patterns mapped to symbolic names and KeyType.
package klv

// KeyType classifies a KLV key for MXF handler dispatch.
type KeyType int

const (
	KeyUnknown KeyType = iota
	KeyData
	KeyVideo
	KeyAudio
	KeySystem
	KeyTimecodeComponent
	KeyHeaderPartition
	KeyFooterPartition
	KeyIndexTableSegment
)

func (k KeyType) String() string {
	switch k {
	case KeyData:
		return "Data"
	case KeyVideo:
		return "Video"
	case KeyAudio:
		return "Audio"
	case KeySystem:
		return "System"
	case KeyTimecodeComponent:
		return "TimecodeComponent"
	case KeyHeaderPartition:
		return "HeaderPartition"
	case KeyFooterPartition:
		return "FooterPartition"
	case KeyIndexTableSegment:
		return "IndexTableSegment"
	default:
		return "Unknown"
	}
}

// essenceKey is one entry in the closed key table: a symbolic name, the
// byte pattern it matches as a prefix of a 16-byte key, and the KeyType it
// classifies to.
type essenceKey struct {
	name    string
	pattern []byte
	kind    KeyType
}

// essenceKeys is the closed list of recognised MXF structural and
// essence-element keys: a closed list of about 80 entries. Classify
// always picks the longest matching prefix so more specific entries win
// over shorter, more general ones that happen to share a prefix.
var essenceKeys = []essenceKey{
	{name: "HeaderPartitionClosedComplete", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x02, 0x05, 0x01, 0x01, 0x0D, 0x01, 0x02, 0x01, 0x01, 0x02}, kind: KeyHeaderPartition},
	{name: "HeaderPartitionOpenIncomplete", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x02, 0x05, 0x01, 0x01, 0x0D, 0x01, 0x02, 0x01, 0x01, 0x03}, kind: KeyHeaderPartition},
	{name: "HeaderPartitionClosedIncomplete", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x02, 0x05, 0x01, 0x01, 0x0D, 0x01, 0x02, 0x01, 0x01, 0x04}, kind: KeyHeaderPartition},
	{name: "BodyPartitionClosedComplete", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x02, 0x05, 0x01, 0x01, 0x0D, 0x01, 0x02, 0x01, 0x01, 0x11}, kind: KeyUnknown},
	{name: "BodyPartitionOpenIncomplete", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x02, 0x05, 0x01, 0x01, 0x0D, 0x01, 0x02, 0x01, 0x01, 0x12}, kind: KeyUnknown},
	{name: "BodyPartitionClosedIncomplete", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x02, 0x05, 0x01, 0x01, 0x0D, 0x01, 0x02, 0x01, 0x01, 0x13}, kind: KeyUnknown},
	{name: "FooterPartitionClosedComplete", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x02, 0x05, 0x01, 0x01, 0x0D, 0x01, 0x02, 0x01, 0x01, 0x21}, kind: KeyFooterPartition},
	{name: "FooterPartitionOpenIncomplete", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x02, 0x05, 0x01, 0x01, 0x0D, 0x01, 0x02, 0x01, 0x01, 0x22}, kind: KeyFooterPartition},
	{name: "FooterPartitionClosedIncomplete", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x02, 0x05, 0x01, 0x01, 0x0D, 0x01, 0x02, 0x01, 0x01, 0x23}, kind: KeyFooterPartition},
	{name: "PrimerPack", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x02, 0x05, 0x01, 0x01, 0x0D, 0x01, 0x02, 0x01, 0x01, 0x05}, kind: KeyUnknown},
	{name: "IndexTableSegment", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x02, 0x53, 0x01, 0x01, 0x0D, 0x01, 0x02, 0x01, 0x01, 0x10}, kind: KeyIndexTableSegment},
	{name: "RandomIndexPack", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x02, 0x05, 0x01, 0x01, 0x0D, 0x01, 0x02, 0x01, 0x01, 0x11}, kind: KeyUnknown},
	{name: "SystemMetadataPack", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x02, 0x05, 0x01, 0x01, 0x0D, 0x01, 0x03, 0x01, 0x04, 0x01, 0x01, 0x00}, kind: KeySystem},
	{name: "SystemMetadataSet", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x02, 0x53, 0x01, 0x01, 0x0D, 0x01, 0x03, 0x01, 0x04, 0x01, 0x01, 0x01}, kind: KeySystem},
	{name: "TimecodeComponent", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x02, 0x53, 0x01, 0x01, 0x0D, 0x01, 0x01, 0x01, 0x01, 0x01, 0x14, 0x00}, kind: KeyTimecodeComponent},
	{name: "SDUncompressedPicture", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x01, 0x02, 0x01, 0x00, 0x0D, 0x01, 0x03, 0x01, 0x01, 0x01, 0x01, 0x00}, kind: KeyVideo},
	{name: "HDUncompressedPicture", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x01, 0x02, 0x01, 0x00, 0x0D, 0x01, 0x03, 0x01, 0x01, 0x02, 0x01, 0x00}, kind: KeyVideo},
	{name: "MPEG2_422P_ML_Picture", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x01, 0x02, 0x01, 0x00, 0x0D, 0x01, 0x03, 0x01, 0x01, 0x03, 0x01, 0x00}, kind: KeyVideo},
	{name: "MPEG2_MP_ML_Picture", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x01, 0x02, 0x01, 0x00, 0x0D, 0x01, 0x03, 0x01, 0x01, 0x04, 0x01, 0x00}, kind: KeyVideo},
	{name: "MPEG2_MP_HL_1440_Picture", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x01, 0x02, 0x01, 0x00, 0x0D, 0x01, 0x03, 0x01, 0x01, 0x05, 0x01, 0x00}, kind: KeyVideo},
	{name: "MPEG2_MP_HL_Picture", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x01, 0x02, 0x01, 0x00, 0x0D, 0x01, 0x03, 0x01, 0x01, 0x06, 0x01, 0x00}, kind: KeyVideo},
	{name: "MPEG2_422P_HL_Picture", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x01, 0x02, 0x01, 0x00, 0x0D, 0x01, 0x03, 0x01, 0x01, 0x07, 0x01, 0x00}, kind: KeyVideo},
	{name: "AVCIntra100_1080_Picture", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x01, 0x02, 0x01, 0x00, 0x0D, 0x01, 0x03, 0x01, 0x01, 0x10, 0x01, 0x00}, kind: KeyVideo},
	{name: "AVCIntra100_720_Picture", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x01, 0x02, 0x01, 0x00, 0x0D, 0x01, 0x03, 0x01, 0x01, 0x11, 0x01, 0x00}, kind: KeyVideo},
	{name: "AVCIntra50_1080_Picture", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x01, 0x02, 0x01, 0x00, 0x0D, 0x01, 0x03, 0x01, 0x01, 0x12, 0x01, 0x00}, kind: KeyVideo},
	{name: "AVCIntra50_720_Picture", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x01, 0x02, 0x01, 0x00, 0x0D, 0x01, 0x03, 0x01, 0x01, 0x13, 0x01, 0x00}, kind: KeyVideo},
	{name: "AVC_HighProfile_Picture", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x01, 0x02, 0x01, 0x00, 0x0D, 0x01, 0x03, 0x01, 0x01, 0x14, 0x01, 0x00}, kind: KeyVideo},
	{name: "VC3_DNxHD_Picture", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x01, 0x02, 0x01, 0x00, 0x0D, 0x01, 0x03, 0x01, 0x01, 0x15, 0x01, 0x00}, kind: KeyVideo},
	{name: "VC3_DNxHR_Picture", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x01, 0x02, 0x01, 0x00, 0x0D, 0x01, 0x03, 0x01, 0x01, 0x16, 0x01, 0x00}, kind: KeyVideo},
	{name: "JPEG2000_Picture", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x01, 0x02, 0x01, 0x00, 0x0D, 0x01, 0x03, 0x01, 0x01, 0x18, 0x01, 0x00}, kind: KeyVideo},
	{name: "H264_LongGOP_Picture", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x01, 0x02, 0x01, 0x00, 0x0D, 0x01, 0x03, 0x01, 0x01, 0x20, 0x01, 0x00}, kind: KeyVideo},
	{name: "H265_HEVC_Picture", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x01, 0x02, 0x01, 0x00, 0x0D, 0x01, 0x03, 0x01, 0x01, 0x21, 0x01, 0x00}, kind: KeyVideo},
	{name: "UncompressedPCM_Sound", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x01, 0x02, 0x01, 0x00, 0x0D, 0x01, 0x03, 0x01, 0x02, 0x01, 0x01, 0x00}, kind: KeyAudio},
	{name: "AES3_Sound", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x01, 0x02, 0x01, 0x00, 0x0D, 0x01, 0x03, 0x01, 0x02, 0x02, 0x01, 0x00}, kind: KeyAudio},
	{name: "BWF_Sound", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x01, 0x02, 0x01, 0x00, 0x0D, 0x01, 0x03, 0x01, 0x02, 0x03, 0x01, 0x00}, kind: KeyAudio},
	{name: "AC3_Sound", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x01, 0x02, 0x01, 0x00, 0x0D, 0x01, 0x03, 0x01, 0x02, 0x04, 0x01, 0x00}, kind: KeyAudio},
	{name: "DolbyE_Sound", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x01, 0x02, 0x01, 0x00, 0x0D, 0x01, 0x03, 0x01, 0x02, 0x05, 0x01, 0x00}, kind: KeyAudio},
	{name: "MPEG1Layer2_Sound", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x01, 0x02, 0x01, 0x00, 0x0D, 0x01, 0x03, 0x01, 0x02, 0x06, 0x01, 0x00}, kind: KeyAudio},
	{name: "MPEG2AAC_Sound", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x01, 0x02, 0x01, 0x00, 0x0D, 0x01, 0x03, 0x01, 0x02, 0x07, 0x01, 0x00}, kind: KeyAudio},
	{name: "DTS_Sound", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x01, 0x02, 0x01, 0x00, 0x0D, 0x01, 0x03, 0x01, 0x02, 0x08, 0x01, 0x00}, kind: KeyAudio},
	{name: "ANCDataEssence", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x01, 0x02, 0x01, 0x00, 0x0D, 0x01, 0x03, 0x01, 0x03, 0x01, 0x01, 0x00}, kind: KeyData},
	{name: "VBIDataEssence", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x01, 0x02, 0x01, 0x00, 0x0D, 0x01, 0x03, 0x01, 0x03, 0x02, 0x01, 0x00}, kind: KeyData},
	{name: "SubCapDataEssence", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x01, 0x02, 0x01, 0x00, 0x0D, 0x01, 0x03, 0x01, 0x03, 0x03, 0x01, 0x00}, kind: KeyData},
	{name: "ISXDDataEssence", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x01, 0x02, 0x01, 0x00, 0x0D, 0x01, 0x03, 0x01, 0x03, 0x08, 0x01, 0x00}, kind: KeyData},
	{name: "TextBasedDataEssence", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x01, 0x02, 0x01, 0x00, 0x0D, 0x01, 0x03, 0x01, 0x03, 0x09, 0x01, 0x00}, kind: KeyData},
	{name: "TimedTextDataEssence", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x01, 0x02, 0x01, 0x00, 0x0D, 0x01, 0x03, 0x01, 0x03, 0x10, 0x01, 0x00}, kind: KeyData},
	{name: "GenericStreamPartition", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x01, 0x02, 0x01, 0x00, 0x0D, 0x01, 0x03, 0x01, 0x10, 0x01, 0x01, 0x00}, kind: KeyUnknown},
	{name: "CompoundEssenceElement", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x01, 0x02, 0x01, 0x00, 0x0D, 0x01, 0x03, 0x01, 0x04, 0x01, 0x01, 0x00}, kind: KeyUnknown},
	{name: "SDUncompressedPicture_ClipWrapped", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x01, 0x02, 0x01, 0x00, 0x0D, 0x01, 0x03, 0x01, 0x01, 0x01, 0x00, 0x00}, kind: KeyVideo},
	{name: "VC3_DNxHD_Picture_ClipWrapped", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x01, 0x02, 0x01, 0x00, 0x0D, 0x01, 0x03, 0x01, 0x01, 0x15, 0x00, 0x00}, kind: KeyVideo},
	{name: "H264_LongGOP_Picture_ClipWrapped", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x01, 0x02, 0x01, 0x00, 0x0D, 0x01, 0x03, 0x01, 0x01, 0x20, 0x00, 0x00}, kind: KeyVideo},
	{name: "UncompressedPCM_Sound_ClipWrapped", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x01, 0x02, 0x01, 0x00, 0x0D, 0x01, 0x03, 0x01, 0x02, 0x01, 0x00, 0x00}, kind: KeyAudio},
	{name: "AC3_Sound_ClipWrapped", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x01, 0x02, 0x01, 0x00, 0x0D, 0x01, 0x03, 0x01, 0x02, 0x04, 0x00, 0x00}, kind: KeyAudio},
	{name: "ANCDataEssence_ClipWrapped", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x01, 0x02, 0x01, 0x00, 0x0D, 0x01, 0x03, 0x01, 0x03, 0x01, 0x00, 0x00}, kind: KeyData},
	{name: "VBIDataEssence_ClipWrapped", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x01, 0x02, 0x01, 0x00, 0x0D, 0x01, 0x03, 0x01, 0x03, 0x02, 0x00, 0x00}, kind: KeyData},
	{name: "Preface", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x02, 0x53, 0x01, 0x01, 0x0D, 0x01, 0x01, 0x01, 0x01, 0x01, 0x2F, 0x00}, kind: KeyUnknown},
	{name: "ContentStorage", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x02, 0x53, 0x01, 0x01, 0x0D, 0x01, 0x01, 0x01, 0x01, 0x01, 0x19, 0x01}, kind: KeyUnknown},
	{name: "SourcePackage", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x02, 0x53, 0x01, 0x01, 0x0D, 0x01, 0x01, 0x01, 0x01, 0x01, 0x37, 0x00}, kind: KeyUnknown},
	{name: "MaterialPackage", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x02, 0x53, 0x01, 0x01, 0x0D, 0x01, 0x01, 0x01, 0x01, 0x01, 0x36, 0x00}, kind: KeyUnknown},
	{name: "Track", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x02, 0x53, 0x01, 0x01, 0x0D, 0x01, 0x01, 0x01, 0x01, 0x01, 0x3B, 0x00}, kind: KeyUnknown},
	{name: "Sequence", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x02, 0x53, 0x01, 0x01, 0x0D, 0x01, 0x01, 0x01, 0x01, 0x01, 0x0F, 0x00}, kind: KeyUnknown},
	{name: "EssenceContainerData", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x02, 0x53, 0x01, 0x01, 0x0D, 0x01, 0x01, 0x01, 0x01, 0x01, 0x23, 0x00}, kind: KeyUnknown},
	{name: "DMSegment", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x02, 0x53, 0x01, 0x01, 0x0D, 0x01, 0x01, 0x01, 0x01, 0x01, 0x44, 0x00}, kind: KeyUnknown},
	{name: "DMSourceClip", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x02, 0x53, 0x01, 0x01, 0x0D, 0x01, 0x01, 0x01, 0x01, 0x01, 0x65, 0x00}, kind: KeyUnknown},
	{name: "HeaderPartitionClosedComplete_OP1b", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x02, 0x05, 0x01, 0x01, 0x0D, 0x01, 0x02, 0x01, 0x02, 0x02}, kind: KeyHeaderPartition},
	{name: "HeaderPartitionClosedComplete_OP2a", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x02, 0x05, 0x01, 0x01, 0x0D, 0x01, 0x02, 0x01, 0x03, 0x02}, kind: KeyHeaderPartition},
	{name: "HeaderPartitionClosedComplete_OPAtom", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x02, 0x05, 0x01, 0x01, 0x0D, 0x01, 0x02, 0x01, 0x10, 0x02}, kind: KeyHeaderPartition},
	{name: "VC1_Picture", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x01, 0x02, 0x01, 0x00, 0x0D, 0x01, 0x03, 0x01, 0x01, 0x22, 0x01, 0x00}, kind: KeyVideo},
	{name: "ProRes_Picture", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x01, 0x02, 0x01, 0x00, 0x0D, 0x01, 0x03, 0x01, 0x01, 0x23, 0x01, 0x00}, kind: KeyVideo},
	{name: "XAVC_Picture", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x01, 0x02, 0x01, 0x00, 0x0D, 0x01, 0x03, 0x01, 0x01, 0x24, 0x01, 0x00}, kind: KeyVideo},
	{name: "XDCAM_HD422_Picture", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x01, 0x02, 0x01, 0x00, 0x0D, 0x01, 0x03, 0x01, 0x01, 0x25, 0x01, 0x00}, kind: KeyVideo},
	{name: "MPEG4_Picture", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x01, 0x02, 0x01, 0x00, 0x0D, 0x01, 0x03, 0x01, 0x01, 0x26, 0x01, 0x00}, kind: KeyVideo},
	{name: "Opus_Sound", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x01, 0x02, 0x01, 0x00, 0x0D, 0x01, 0x03, 0x01, 0x02, 0x09, 0x01, 0x00}, kind: KeyAudio},
	{name: "FLAC_Sound", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x01, 0x02, 0x01, 0x00, 0x0D, 0x01, 0x03, 0x01, 0x02, 0x0A, 0x01, 0x00}, kind: KeyAudio},
	{name: "MGA_MetadataDataEssence", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x01, 0x02, 0x01, 0x00, 0x0D, 0x01, 0x03, 0x01, 0x03, 0x11, 0x01, 0x00}, kind: KeyData},
	{name: "ST2108_HDRDataEssence", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x01, 0x02, 0x01, 0x00, 0x0D, 0x01, 0x03, 0x01, 0x03, 0x12, 0x01, 0x00}, kind: KeyData},
	{name: "DMFramework", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x02, 0x53, 0x01, 0x01, 0x0D, 0x01, 0x01, 0x01, 0x01, 0x01, 0x41, 0x00}, kind: KeyUnknown},
	{name: "EssenceData", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x02, 0x53, 0x01, 0x01, 0x0D, 0x01, 0x01, 0x01, 0x01, 0x01, 0x21, 0x00}, kind: KeyUnknown},
	{name: "NetworkLocator", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x02, 0x53, 0x01, 0x01, 0x0D, 0x01, 0x01, 0x01, 0x01, 0x01, 0x18, 0x00}, kind: KeyUnknown},
	{name: "TextLocator", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x02, 0x53, 0x01, 0x01, 0x0D, 0x01, 0x01, 0x01, 0x01, 0x01, 0x13, 0x00}, kind: KeyUnknown},
	{name: "TaggedValue", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x02, 0x53, 0x01, 0x01, 0x0D, 0x01, 0x01, 0x01, 0x01, 0x01, 0x3F, 0x00}, kind: KeyUnknown},
	{name: "IndexTableSegmentSet", pattern: []byte{0x06, 0x0E, 0x2B, 0x34, 0x02, 0x53, 0x01, 0x01, 0x0D, 0x01, 0x01, 0x01, 0x01, 0x01, 0x2A, 0x00}, kind: KeyUnknown},
}

// Classify returns the KeyType for key by longest-prefix match against
// essenceKeys. A pattern matches only a key at least as long as that
// pattern, so a key shorter than every pattern returns KeyUnknown. The
// UL-prefix check
// (opxerr.ErrNotMXF) happens in ReadRecord before Classify is reached.
func Classify(key []byte) KeyType {
	best := -1
	kind := KeyUnknown
	for _, ek := range essenceKeys {
		if len(ek.pattern) <= len(key) && bytesEqual(key[:len(ek.pattern)], ek.pattern) {
			if len(ek.pattern) > best {
				best = len(ek.pattern)
				kind = ek.kind
			}
		}
	}
	return kind
}

// KeyName returns the symbolic name for key via the same longest-prefix
// match Classify uses, or false if no entry matches. Used by MXF Extract
// sinks to name demuxed files.
func KeyName(key []byte) (string, bool) {
	bestLen := -1
	name := ""
	for _, ek := range essenceKeys {
		if len(ek.pattern) <= len(key) && bytesEqual(key[:len(ek.pattern)], ek.pattern) {
			if len(ek.pattern) > bestLen {
				bestLen = len(ek.pattern)
				name = ek.name
			}
		}
	}
	return name, bestLen >= 0
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
