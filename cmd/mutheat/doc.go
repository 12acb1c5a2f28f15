// 19 Oct 2026
/*

mutheat reads predicted energy changes for protein point mutations
and draws them as a heatmap, one row per mutant residue and one column
per position.

Usage:
 mutheat [options] predictions.txt

Each line of the input should look like

 A31D -1.23

which is the wildtype residue, the residue number, the mutant residue
and the predicted change in energy. Lines which do not have exactly
two fields are quietly skipped. If the file name ends in ".gz", it is
decompressed. A file name of "-" means standard input.

By default, mutations to C, G and P are left out and only residues
28-35, 49-67 and 100-111 are kept. Scores are rounded to two decimal
places. Columns come in the order positions first appear in the input.
Rows are sorted.

Negative scores are coloured blue and positive scores red. The colour
gets deeper as the size of the value grows, on either side. White sits
at zero, wherever zero falls between the smallest and largest scores.

The result is a single html file, mutation_energy_heatmap_selected.html
in the current directory unless you say otherwise. Its full path is
printed and a browser is started if one can be found.

Flags:
  -c, --config file
    	yaml file with settings. Keys are input, output, exclude, ranges,
    	digits, nstop, title, png, csv, open and log_level. Flags given
    	on the command line win over the file.
  -o, --output file
    	html output file
  -x, --exclude CGP
    	mutant residues to leave out
  -r, --ranges 28-35,49-67,100-111
    	residue ranges to keep, inclusive
  -d, --digits 2
    	decimal places for scores
  --title string
    	plot title
  --png file
    	also write a png picture
  --csv file
    	also write the matrix in csv format
  --no-open
    	do not try to show the result
  -v, --verbose
    	debug logging

It is an error if nothing is left after filtering or if every score
is the same, since there is then no colour scale to draw.

*/
package main
