package header

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/morrilet/GMTK-2022/internal/catalog"
	"github.com/morrilet/GMTK-2022/wwise"
)

const banner = `/////////////////////////////////////////////////////////////////////////////////////////////////////
//
// Audiokinetic Wwise generated include file. Do not edit.
//
/////////////////////////////////////////////////////////////////////////////////////////////////////

#ifndef __WWISE_IDS_H__
#define __WWISE_IDS_H__

#include <AK/SoundEngine/Common/AkTypes.h>

`

// Write emits t in the layout of a Wwise generated header. Empty categories
// are left out, as Wwise does.
func Write(w io.Writer, t *catalog.Table) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(banner)
	bw.WriteString("namespace AK\n{\n")
	for _, c := range wwise.Categories() {
		entries := t.Entries(c)
		if len(entries) == 0 {
			continue
		}
		fmt.Fprintf(bw, "    namespace %s\n    {\n", c)
		for _, e := range entries {
			fmt.Fprintf(bw, "        static const AkUniqueID %s = %dU;\n", e.Name, e.ID)
		}
		fmt.Fprintf(bw, "    } // namespace %s\n\n", c)
	}
	bw.WriteString("}// namespace AK\n\n#endif // __WWISE_IDS_H__\n")
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("error writing header: %w", err)
	}
	return nil
}

// String renders t as header text. It is the canonical form used for
// snapshot digests.
func String(t *catalog.Table) string {
	var sb strings.Builder
	_ = Write(&sb, t)
	return sb.String()
}
