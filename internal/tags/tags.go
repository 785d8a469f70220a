// Package tags reads and writes embedded ID3 metadata on audio files.
//
// Besides the standard title and artist frames, every downloaded file
// carries a user-defined text frame keyed "video_id" holding the
// platform-native id, so download state can be re-derived from the files
// alone if the ledger is lost.
package tags

import (
	"fmt"

	"github.com/bogem/id3v2"
)

// videoIDKey is the TXXX description under which the platform-native id is
// stored. The literal is shared with every reader of the library tree.
const videoIDKey = "video_id"

// Meta is the embedded metadata of one audio file.
type Meta struct {
	Title   string
	Artist  string
	VideoID string
}

// Read returns the embedded metadata of the file at path. Absent frames
// yield zero values, not an error.
func Read(path string) (Meta, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return Meta{}, fmt.Errorf("open tag %s: %w", path, err)
	}
	defer tag.Close()

	return Meta{
		Title:   tag.Title(),
		Artist:  tag.Artist(),
		VideoID: userDefinedText(tag, videoIDKey),
	}, nil
}

// VideoID returns the embedded platform-native id, or "" when the file has
// none. Unreadable files also report "": the reconciler treats them as
// untagged rather than failing a whole scan.
func VideoID(path string) string {
	meta, err := Read(path)
	if err != nil {
		return ""
	}
	return meta.VideoID
}

// Write stamps title, artist, and the platform-native id onto the file at
// path, creating the tag if the file has none.
func Write(path string, meta Meta) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("open tag %s: %w", path, err)
	}
	defer tag.Close()

	tag.SetDefaultEncoding(id3v2.EncodingUTF8)
	tag.SetTitle(meta.Title)
	tag.SetArtist(meta.Artist)
	if meta.VideoID != "" {
		setUserDefinedText(tag, videoIDKey, meta.VideoID)
	}

	if err := tag.Save(); err != nil {
		return fmt.Errorf("save tag %s: %w", path, err)
	}
	return nil
}

// userDefinedText returns the value of the TXXX frame with the given
// description, or "" when absent.
func userDefinedText(tag *id3v2.Tag, desc string) string {
	for _, frame := range tag.GetFrames("TXXX") {
		udt, ok := frame.(id3v2.UserDefinedTextFrame)
		if ok && udt.Description == desc {
			return udt.Value
		}
	}
	return ""
}

// setUserDefinedText replaces any TXXX frame with the given description.
func setUserDefinedText(tag *id3v2.Tag, desc, value string) {
	var keep []id3v2.UserDefinedTextFrame
	for _, frame := range tag.GetFrames("TXXX") {
		udt, ok := frame.(id3v2.UserDefinedTextFrame)
		if ok && udt.Description != desc {
			keep = append(keep, udt)
		}
	}
	tag.DeleteFrames("TXXX")
	for _, udt := range keep {
		tag.AddUserDefinedTextFrame(udt)
	}
	tag.AddUserDefinedTextFrame(id3v2.UserDefinedTextFrame{
		Encoding:    id3v2.EncodingUTF8,
		Description: desc,
		Value:       value,
	})
}
