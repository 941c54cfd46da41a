package titlespec

import "strings"

// ExtractedTextFilename returns the file name used when saving a record's
// extracted text. Path separators in the code are replaced.
func ExtractedTextFilename(code string) string {
	code = strings.NewReplacer("/", "_", `\`, "_").Replace(code)
	return code + "_extracted_text.txt"
}

// ExtractedText returns the Raw Text of rec as found in the full dataset,
// joined on File Name. Returns ENOTFOUND if the full dataset has no record
// with that file name.
func ExtractedText(full *Dataset, rec *Record) (string, error) {
	match, err := full.FindByFileName(rec.FileName())
	if err != nil {
		return "", Errorf(ENOTFOUND, "no extracted text for %q", rec.FileName())
	}
	return match.RawText(), nil
}
